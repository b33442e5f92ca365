// Package congressionalrecord holds the Congressional Record endpoint.
package congressionalrecord

import "github.com/cdg-go/cdg/api"

// List lists Congressional Record issues, optionally for one date.
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

func (b *ListBuilder) Year(year int) *ListBuilder {
	b.f.Year = &year
	return b
}

func (b *ListBuilder) Month(month int) *ListBuilder {
	b.f.Month = &month
	return b
}

func (b *ListBuilder) Day(day int) *ListBuilder {
	b.f.Day = &day
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

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *ListBuilder) Build() (*List, error) {
	if err := api.CheckFields("congressionalrecord.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "congressional-record"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("y", e.f.Year)
	p.PushOpt("m", e.f.Month)
	p.PushOpt("d", e.f.Day)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
