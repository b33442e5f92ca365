// Package law holds the public and private law endpoints.
package law

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// ByCongress lists laws enacted by a congress.
type ByCongress struct {
	api.GetEndpoint
	f congressFields
}

// ByCongressBuilder builds ByCongress. Required path segments must be set before Build.
type ByCongressBuilder struct {
	f congressFields
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

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *ByCongressBuilder) Build() (*ByCongress, error) {
	if err := api.CheckFields("law.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("law/%d", *e.f.Congress)
}

func (e *ByCongress) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// ByType lists public or private laws of a congress.
type ByType struct {
	api.GetEndpoint
	f typeFields
}

// ByTypeBuilder builds ByType.
type ByTypeBuilder struct {
	f typeFields
}

func NewByTypeBuilder() *ByTypeBuilder { return new(ByTypeBuilder) }

func (b *ByTypeBuilder) Congress(congress int) *ByTypeBuilder {
	b.f.Congress = &congress
	return b
}

func (b *ByTypeBuilder) LawType(lawType api.LawType) *ByTypeBuilder {
	b.f.LawType = &lawType
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

func (b *ByTypeBuilder) Build() (*ByType, error) {
	if err := api.CheckFields("law.ByType", &b.f); err != nil {
		return nil, err
	}
	return &ByType{f: b.f}, nil
}

func (e *ByType) Endpoint() string {
	return fmt.Sprintf("law/%d/%s", *e.f.Congress, *e.f.LawType)
}

func (e *ByType) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Law returns the bill that became the law.
type Law struct {
	api.GetEndpoint
	f lawFields
}

// LawBuilder builds Law.
type LawBuilder struct {
	f lawFields
}

func NewLawBuilder() *LawBuilder { return new(LawBuilder) }

func (b *LawBuilder) Congress(congress int) *LawBuilder {
	b.f.Congress = &congress
	return b
}

func (b *LawBuilder) LawType(lawType api.LawType) *LawBuilder {
	b.f.LawType = &lawType
	return b
}

func (b *LawBuilder) LawNumber(lawNumber int) *LawBuilder {
	b.f.LawNumber = &lawNumber
	return b
}

func (b *LawBuilder) Format(format api.Format) *LawBuilder {
	b.f.Format = format
	return b
}

func (b *LawBuilder) Build() (*Law, error) {
	if err := api.CheckFields("law.Law", &b.f); err != nil {
		return nil, err
	}
	return &Law{f: b.f}, nil
}

func (e *Law) Endpoint() string {
	return fmt.Sprintf("law/%d/%s/%d", *e.f.Congress, *e.f.LawType, *e.f.LawNumber)
}

func (e *Law) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}
