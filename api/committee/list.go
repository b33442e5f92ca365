package committee

import (
	"fmt"
	"time"

	"github.com/cdg-go/cdg/api"
)

// List lists congressional committees.
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

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *ListBuilder) Build() (*List, error) {
	if err := api.CheckFields("committee.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "committee"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// ByChamber is GET committee/{chamber}.
type ByChamber struct {
	api.GetEndpoint
	f chamberListFields
}

// ByChamberBuilder builds ByChamber.
type ByChamberBuilder struct {
	f chamberListFields
}

func NewByChamberBuilder() *ByChamberBuilder { return new(ByChamberBuilder) }

func (b *ByChamberBuilder) Chamber(chamber api.Chamber) *ByChamberBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *ByChamberBuilder) Format(format api.Format) *ByChamberBuilder {
	b.f.Format = format
	return b
}

func (b *ByChamberBuilder) Offset(offset int) *ByChamberBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ByChamberBuilder) Limit(limit int) *ByChamberBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ByChamberBuilder) FromDateTime(fromDateTime time.Time) *ByChamberBuilder {
	b.f.FromDateTime = &fromDateTime
	return b
}

func (b *ByChamberBuilder) ToDateTime(toDateTime time.Time) *ByChamberBuilder {
	b.f.ToDateTime = &toDateTime
	return b
}

func (b *ByChamberBuilder) Build() (*ByChamber, error) {
	if err := api.CheckFields("committee.ByChamber", &b.f); err != nil {
		return nil, err
	}
	return &ByChamber{f: b.f}, nil
}

func (e *ByChamber) Endpoint() string {
	return fmt.Sprintf("committee/%s", *e.f.Chamber)
}

func (e *ByChamber) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// ByCongress is GET committee/{congress}.
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

func (b *ByCongressBuilder) Build() (*ByCongress, error) {
	if err := api.CheckFields("committee.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("committee/%d", *e.f.Congress)
}

func (e *ByCongress) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// ByCongressChamber is GET committee/{congress}/{chamber}.
type ByCongressChamber struct {
	api.GetEndpoint
	f congressChamberListFields
}

// ByCongressChamberBuilder builds ByCongressChamber.
type ByCongressChamberBuilder struct {
	f congressChamberListFields
}

func NewByCongressChamberBuilder() *ByCongressChamberBuilder { return new(ByCongressChamberBuilder) }

func (b *ByCongressChamberBuilder) Congress(congress int) *ByCongressChamberBuilder {
	b.f.Congress = &congress
	return b
}

func (b *ByCongressChamberBuilder) Chamber(chamber api.Chamber) *ByCongressChamberBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *ByCongressChamberBuilder) Format(format api.Format) *ByCongressChamberBuilder {
	b.f.Format = format
	return b
}

func (b *ByCongressChamberBuilder) Offset(offset int) *ByCongressChamberBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ByCongressChamberBuilder) Limit(limit int) *ByCongressChamberBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ByCongressChamberBuilder) FromDateTime(fromDateTime time.Time) *ByCongressChamberBuilder {
	b.f.FromDateTime = &fromDateTime
	return b
}

func (b *ByCongressChamberBuilder) ToDateTime(toDateTime time.Time) *ByCongressChamberBuilder {
	b.f.ToDateTime = &toDateTime
	return b
}

func (b *ByCongressChamberBuilder) Build() (*ByCongressChamber, error) {
	if err := api.CheckFields("committee.ByCongressChamber", &b.f); err != nil {
		return nil, err
	}
	return &ByCongressChamber{f: b.f}, nil
}

func (e *ByCongressChamber) Endpoint() string {
	return fmt.Sprintf("committee/%d/%s", *e.f.Congress, *e.f.Chamber)
}

func (e *ByCongressChamber) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}
