// Package treaty holds the treaty endpoints. Partitioned treaties carry a
// suffix such as A or B after the treaty number.
package treaty

import (
	"fmt"
	"time"

	"github.com/cdg-go/cdg/api"
)

// List lists treaties sorted by date of last update.
type List struct {
	api.GetEndpoint
	f listFields
}

// ListBuilder builds List.
type ListBuilder struct {
	f listFields
}

func NewListBuilder() *ListBuilder { return new(ListBuilder) }

func (b *ListBuilder) Format(format api.Format) *ListBuilder {
	b.f.Format = format
	return b
}

func (b *ListBuilder) Offset(offset int) *ListBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ListBuilder) Limit(limit int) *ListBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ListBuilder) FromDateTime(fromDateTime time.Time) *ListBuilder {
	b.f.FromDateTime = &fromDateTime
	return b
}

func (b *ListBuilder) ToDateTime(toDateTime time.Time) *ListBuilder {
	b.f.ToDateTime = &toDateTime
	return b
}

func (b *ListBuilder) Sort(sort api.Sort) *ListBuilder {
	b.f.Sort = &sort
	return b
}

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *ListBuilder) Build() (*List, error) {
	if err := api.CheckFields("treaty.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "treaty"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	p.PushOpt("sort", e.f.Sort)
	return p
}

// ByCongress is GET treaty/{congress}.
type ByCongress struct {
	api.GetEndpoint
	f congressListFields
}

// ByCongressBuilder builds ByCongress.
type ByCongressBuilder struct {
	f congressListFields
}

func NewByCongressBuilder() *ByCongressBuilder { return new(ByCongressBuilder) }

func (b *ByCongressBuilder) Congress(congress int) *ByCongressBuilder {
	b.f.Congress = &congress
	return b
}

func (b *ByCongressBuilder) Format(format api.Format) *ByCongressBuilder {
	b.f.Format = format
	return b
}

func (b *ByCongressBuilder) Offset(offset int) *ByCongressBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ByCongressBuilder) Limit(limit int) *ByCongressBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ByCongressBuilder) FromDateTime(fromDateTime time.Time) *ByCongressBuilder {
	b.f.FromDateTime = &fromDateTime
	return b
}

func (b *ByCongressBuilder) ToDateTime(toDateTime time.Time) *ByCongressBuilder {
	b.f.ToDateTime = &toDateTime
	return b
}

func (b *ByCongressBuilder) Sort(sort api.Sort) *ByCongressBuilder {
	b.f.Sort = &sort
	return b
}

func (b *ByCongressBuilder) Build() (*ByCongress, error) {
	if err := api.CheckFields("treaty.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("treaty/%d", *e.f.Congress)
}

func (e *ByCongress) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	p.PushOpt("sort", e.f.Sort)
	return p
}

// Treaty returns one treaty.
type Treaty struct {
	api.GetEndpoint
	f treatyFields
}

// TreatyBuilder builds Treaty.
type TreatyBuilder struct {
	f treatyFields
}

func NewTreatyBuilder() *TreatyBuilder { return new(TreatyBuilder) }

func (b *TreatyBuilder) Congress(congress int) *TreatyBuilder {
	b.f.Congress = &congress
	return b
}

func (b *TreatyBuilder) TreatyNumber(treatyNumber int) *TreatyBuilder {
	b.f.TreatyNumber = &treatyNumber
	return b
}

func (b *TreatyBuilder) Format(format api.Format) *TreatyBuilder {
	b.f.Format = format
	return b
}

func (b *TreatyBuilder) Build() (*Treaty, error) {
	if err := api.CheckFields("treaty.Treaty", &b.f); err != nil {
		return nil, err
	}
	return &Treaty{f: b.f}, nil
}

func (e *Treaty) Endpoint() string {
	return fmt.Sprintf("treaty/%d/%d", *e.f.Congress, *e.f.TreatyNumber)
}

func (e *Treaty) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// Partitioned returns one partition of a treaty.
type Partitioned struct {
	api.GetEndpoint
	f partitionFields
}

// PartitionedBuilder builds Partitioned.
type PartitionedBuilder struct {
	f partitionFields
}

func NewPartitionedBuilder() *PartitionedBuilder { return new(PartitionedBuilder) }

func (b *PartitionedBuilder) Congress(congress int) *PartitionedBuilder {
	b.f.Congress = &congress
	return b
}

func (b *PartitionedBuilder) TreatyNumber(treatyNumber int) *PartitionedBuilder {
	b.f.TreatyNumber = &treatyNumber
	return b
}

func (b *PartitionedBuilder) TreatySuffix(treatySuffix string) *PartitionedBuilder {
	b.f.TreatySuffix = &treatySuffix
	return b
}

func (b *PartitionedBuilder) Format(format api.Format) *PartitionedBuilder {
	b.f.Format = format
	return b
}

func (b *PartitionedBuilder) Build() (*Partitioned, error) {
	if err := api.CheckFields("treaty.Partitioned", &b.f); err != nil {
		return nil, err
	}
	return &Partitioned{f: b.f}, nil
}

func (e *Partitioned) Endpoint() string {
	return fmt.Sprintf("treaty/%d/%d/%s", *e.f.Congress, *e.f.TreatyNumber, *e.f.TreatySuffix)
}

func (e *Partitioned) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// Actions is GET treaty/{congress}/{treatyNumber}/actions.
type Actions struct {
	api.GetEndpoint
	f itemPageFields
}

// ActionsBuilder builds Actions.
type ActionsBuilder struct {
	f itemPageFields
}

func NewActionsBuilder() *ActionsBuilder { return new(ActionsBuilder) }

func (b *ActionsBuilder) Congress(congress int) *ActionsBuilder {
	b.f.Congress = &congress
	return b
}

func (b *ActionsBuilder) TreatyNumber(treatyNumber int) *ActionsBuilder {
	b.f.TreatyNumber = &treatyNumber
	return b
}

func (b *ActionsBuilder) Format(format api.Format) *ActionsBuilder {
	b.f.Format = format
	return b
}

func (b *ActionsBuilder) Offset(offset int) *ActionsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ActionsBuilder) Limit(limit int) *ActionsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ActionsBuilder) Build() (*Actions, error) {
	if err := api.CheckFields("treaty.Actions", &b.f); err != nil {
		return nil, err
	}
	return &Actions{f: b.f}, nil
}

func (e *Actions) Endpoint() string {
	return fmt.Sprintf("treaty/%d/%d/actions", *e.f.Congress, *e.f.TreatyNumber)
}

func (e *Actions) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// PartitionedActions lists the actions on one partition of a treaty.
type PartitionedActions struct {
	api.GetEndpoint
	f partitionPageFields
}

// PartitionedActionsBuilder builds PartitionedActions.
type PartitionedActionsBuilder struct {
	f partitionPageFields
}

func NewPartitionedActionsBuilder() *PartitionedActionsBuilder { return new(PartitionedActionsBuilder) }

func (b *PartitionedActionsBuilder) Congress(congress int) *PartitionedActionsBuilder {
	b.f.Congress = &congress
	return b
}

func (b *PartitionedActionsBuilder) TreatyNumber(treatyNumber int) *PartitionedActionsBuilder {
	b.f.TreatyNumber = &treatyNumber
	return b
}

func (b *PartitionedActionsBuilder) TreatySuffix(treatySuffix string) *PartitionedActionsBuilder {
	b.f.TreatySuffix = &treatySuffix
	return b
}

func (b *PartitionedActionsBuilder) Format(format api.Format) *PartitionedActionsBuilder {
	b.f.Format = format
	return b
}

func (b *PartitionedActionsBuilder) Offset(offset int) *PartitionedActionsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *PartitionedActionsBuilder) Limit(limit int) *PartitionedActionsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *PartitionedActionsBuilder) Build() (*PartitionedActions, error) {
	if err := api.CheckFields("treaty.PartitionedActions", &b.f); err != nil {
		return nil, err
	}
	return &PartitionedActions{f: b.f}, nil
}

func (e *PartitionedActions) Endpoint() string {
	return fmt.Sprintf("treaty/%d/%d/%s/actions", *e.f.Congress, *e.f.TreatyNumber, *e.f.TreatySuffix)
}

func (e *PartitionedActions) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Committees is GET treaty/{congress}/{treatyNumber}/committees.
type Committees struct {
	api.GetEndpoint
	f itemPageFields
}

// CommitteesBuilder builds Committees.
type CommitteesBuilder struct {
	f itemPageFields
}

func NewCommitteesBuilder() *CommitteesBuilder { return new(CommitteesBuilder) }

func (b *CommitteesBuilder) Congress(congress int) *CommitteesBuilder {
	b.f.Congress = &congress
	return b
}

func (b *CommitteesBuilder) TreatyNumber(treatyNumber int) *CommitteesBuilder {
	b.f.TreatyNumber = &treatyNumber
	return b
}

func (b *CommitteesBuilder) Format(format api.Format) *CommitteesBuilder {
	b.f.Format = format
	return b
}

func (b *CommitteesBuilder) Offset(offset int) *CommitteesBuilder {
	b.f.Offset = &offset
	return b
}

func (b *CommitteesBuilder) Limit(limit int) *CommitteesBuilder {
	b.f.Limit = &limit
	return b
}

func (b *CommitteesBuilder) Build() (*Committees, error) {
	if err := api.CheckFields("treaty.Committees", &b.f); err != nil {
		return nil, err
	}
	return &Committees{f: b.f}, nil
}

func (e *Committees) Endpoint() string {
	return fmt.Sprintf("treaty/%d/%d/committees", *e.f.Congress, *e.f.TreatyNumber)
}

func (e *Committees) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
