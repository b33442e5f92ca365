// Package nomination holds the presidential nomination endpoints.
package nomination

import (
	"fmt"
	"time"

	"github.com/cdg-go/cdg/api"
)

// List lists nominations sorted by date received.
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
	if err := api.CheckFields("nomination.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "nomination"
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

// ByCongress is GET nomination/{congress}.
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
	if err := api.CheckFields("nomination.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("nomination/%d", *e.f.Congress)
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

// Nomination returns one nomination.
type Nomination struct {
	api.GetEndpoint
	f nominationFields
}

// NominationBuilder builds Nomination.
type NominationBuilder struct {
	f nominationFields
}

func NewNominationBuilder() *NominationBuilder { return new(NominationBuilder) }

func (b *NominationBuilder) Congress(congress int) *NominationBuilder {
	b.f.Congress = &congress
	return b
}

func (b *NominationBuilder) NominationNumber(nominationNumber int) *NominationBuilder {
	b.f.NominationNumber = &nominationNumber
	return b
}

func (b *NominationBuilder) Format(format api.Format) *NominationBuilder {
	b.f.Format = format
	return b
}

func (b *NominationBuilder) Build() (*Nomination, error) {
	if err := api.CheckFields("nomination.Nomination", &b.f); err != nil {
		return nil, err
	}
	return &Nomination{f: b.f}, nil
}

func (e *Nomination) Endpoint() string {
	return fmt.Sprintf("nomination/%d/%d", *e.f.Congress, *e.f.NominationNumber)
}

func (e *Nomination) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// Nominees lists the nominees of one position within a nomination.
type Nominees struct {
	api.GetEndpoint
	f nomineesFields
}

// NomineesBuilder builds Nominees.
type NomineesBuilder struct {
	f nomineesFields
}

func NewNomineesBuilder() *NomineesBuilder { return new(NomineesBuilder) }

func (b *NomineesBuilder) Congress(congress int) *NomineesBuilder {
	b.f.Congress = &congress
	return b
}

func (b *NomineesBuilder) NominationNumber(nominationNumber int) *NomineesBuilder {
	b.f.NominationNumber = &nominationNumber
	return b
}

func (b *NomineesBuilder) Ordinal(ordinal int) *NomineesBuilder {
	b.f.Ordinal = &ordinal
	return b
}

func (b *NomineesBuilder) Format(format api.Format) *NomineesBuilder {
	b.f.Format = format
	return b
}

func (b *NomineesBuilder) Offset(offset int) *NomineesBuilder {
	b.f.Offset = &offset
	return b
}

func (b *NomineesBuilder) Limit(limit int) *NomineesBuilder {
	b.f.Limit = &limit
	return b
}

func (b *NomineesBuilder) Build() (*Nominees, error) {
	if err := api.CheckFields("nomination.Nominees", &b.f); err != nil {
		return nil, err
	}
	return &Nominees{f: b.f}, nil
}

func (e *Nominees) Endpoint() string {
	return fmt.Sprintf("nomination/%d/%d/%d", *e.f.Congress, *e.f.NominationNumber, *e.f.Ordinal)
}

func (e *Nominees) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Actions is GET nomination/{congress}/{nominationNumber}/actions.
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

func (b *ActionsBuilder) NominationNumber(nominationNumber int) *ActionsBuilder {
	b.f.NominationNumber = &nominationNumber
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
	if err := api.CheckFields("nomination.Actions", &b.f); err != nil {
		return nil, err
	}
	return &Actions{f: b.f}, nil
}

func (e *Actions) Endpoint() string {
	return fmt.Sprintf("nomination/%d/%d/actions", *e.f.Congress, *e.f.NominationNumber)
}

func (e *Actions) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Committees is GET nomination/{congress}/{nominationNumber}/committees.
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

func (b *CommitteesBuilder) NominationNumber(nominationNumber int) *CommitteesBuilder {
	b.f.NominationNumber = &nominationNumber
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
	if err := api.CheckFields("nomination.Committees", &b.f); err != nil {
		return nil, err
	}
	return &Committees{f: b.f}, nil
}

func (e *Committees) Endpoint() string {
	return fmt.Sprintf("nomination/%d/%d/committees", *e.f.Congress, *e.f.NominationNumber)
}

func (e *Committees) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Hearings lists printed hearings associated with a nomination.
type Hearings struct {
	api.GetEndpoint
	f itemPageFields
}

// HearingsBuilder builds Hearings.
type HearingsBuilder struct {
	f itemPageFields
}

func NewHearingsBuilder() *HearingsBuilder { return new(HearingsBuilder) }

func (b *HearingsBuilder) Congress(congress int) *HearingsBuilder {
	b.f.Congress = &congress
	return b
}

func (b *HearingsBuilder) NominationNumber(nominationNumber int) *HearingsBuilder {
	b.f.NominationNumber = &nominationNumber
	return b
}

func (b *HearingsBuilder) Format(format api.Format) *HearingsBuilder {
	b.f.Format = format
	return b
}

func (b *HearingsBuilder) Offset(offset int) *HearingsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *HearingsBuilder) Limit(limit int) *HearingsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *HearingsBuilder) Build() (*Hearings, error) {
	if err := api.CheckFields("nomination.Hearings", &b.f); err != nil {
		return nil, err
	}
	return &Hearings{f: b.f}, nil
}

func (e *Hearings) Endpoint() string {
	return fmt.Sprintf("nomination/%d/%d/hearings", *e.f.Congress, *e.f.NominationNumber)
}

func (e *Hearings) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
