// Package congress holds the congress and congressional session endpoints.
package congress

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// List lists congresses and their sessions.
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

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *ListBuilder) Build() (*List, error) {
	if err := api.CheckFields("congress.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "congress"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Congress returns one congress.
type Congress struct {
	api.GetEndpoint
	f congressFields
}

// CongressBuilder builds Congress.
type CongressBuilder struct {
	f congressFields
}

func NewCongressBuilder() *CongressBuilder { return new(CongressBuilder) }

func (b *CongressBuilder) Congress(congress int) *CongressBuilder {
	b.f.Congress = &congress
	return b
}

func (b *CongressBuilder) Format(format api.Format) *CongressBuilder {
	b.f.Format = format
	return b
}

func (b *CongressBuilder) Build() (*Congress, error) {
	if err := api.CheckFields("congress.Congress", &b.f); err != nil {
		return nil, err
	}
	return &Congress{f: b.f}, nil
}

func (e *Congress) Endpoint() string {
	return fmt.Sprintf("congress/%d", *e.f.Congress)
}

func (e *Congress) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// Current returns the current congress.
type Current struct {
	api.GetEndpoint
	f currentFields
}

// CurrentBuilder builds Current.
type CurrentBuilder struct {
	f currentFields
}

func NewCurrentBuilder() *CurrentBuilder { return new(CurrentBuilder) }

func (b *CurrentBuilder) Format(format api.Format) *CurrentBuilder {
	b.f.Format = format
	return b
}

func (b *CurrentBuilder) Build() (*Current, error) {
	if err := api.CheckFields("congress.Current", &b.f); err != nil {
		return nil, err
	}
	return &Current{f: b.f}, nil
}

func (e *Current) Endpoint() string {
	return "congress/current"
}

func (e *Current) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}
