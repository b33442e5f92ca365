package amendment

import (
	"fmt"
	"time"

	"github.com/cdg-go/cdg/api"
)

// List lists amendments, most recently updated first.
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
	if err := api.CheckFields("amendment.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "amendment"
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

// ByCongress lists the amendments of a congress.
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
	if err := api.CheckFields("amendment.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("amendment/%d", *e.f.Congress)
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

// ByType lists amendments of one type in a congress.
type ByType struct {
	api.GetEndpoint
	f typeListFields
}

// ByTypeBuilder builds ByType.
type ByTypeBuilder struct {
	f typeListFields
}

func NewByTypeBuilder() *ByTypeBuilder { return new(ByTypeBuilder) }

func (b *ByTypeBuilder) Congress(congress int) *ByTypeBuilder {
	b.f.Congress = &congress
	return b
}

func (b *ByTypeBuilder) AmendmentType(amendmentType api.AmendmentType) *ByTypeBuilder {
	b.f.AmendmentType = &amendmentType
	return b
}

func (b *ByTypeBuilder) Format(format api.Format) *ByTypeBuilder {
	b.f.Format = format
	return b
}

func (b *ByTypeBuilder) Offset(offset int) *ByTypeBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ByTypeBuilder) Limit(limit int) *ByTypeBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ByTypeBuilder) FromDateTime(fromDateTime time.Time) *ByTypeBuilder {
	b.f.FromDateTime = &fromDateTime
	return b
}

func (b *ByTypeBuilder) ToDateTime(toDateTime time.Time) *ByTypeBuilder {
	b.f.ToDateTime = &toDateTime
	return b
}

func (b *ByTypeBuilder) Sort(sort api.Sort) *ByTypeBuilder {
	b.f.Sort = &sort
	return b
}

func (b *ByTypeBuilder) Build() (*ByType, error) {
	if err := api.CheckFields("amendment.ByType", &b.f); err != nil {
		return nil, err
	}
	return &ByType{f: b.f}, nil
}

func (e *ByType) Endpoint() string {
	return fmt.Sprintf("amendment/%d/%s", *e.f.Congress, *e.f.AmendmentType)
}

func (e *ByType) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	p.PushOpt("sort", e.f.Sort)
	return p
}
