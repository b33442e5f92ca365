// Package committeeprint holds the committee print endpoints.
package committeeprint

import (
	"fmt"
	"time"

	"github.com/cdg-go/cdg/api"
)

// List lists committee prints.
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
	if err := api.CheckFields("committeeprint.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "committee-print"
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

// ByCongress is GET committee-print/{congress}.
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
	if err := api.CheckFields("committeeprint.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("committee-print/%d", *e.f.Congress)
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

// ByChamber is GET committee-print/{congress}/{printChamber}.
type ByChamber struct {
	api.GetEndpoint
	f chamberListFields
}

// ByChamberBuilder builds ByChamber.
type ByChamberBuilder struct {
	f chamberListFields
}

func NewByChamberBuilder() *ByChamberBuilder { return new(ByChamberBuilder) }

func (b *ByChamberBuilder) Congress(congress int) *ByChamberBuilder {
	b.f.Congress = &congress
	return b
}

func (b *ByChamberBuilder) Chamber(chamber api.CommitteeChamber) *ByChamberBuilder {
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
	if err := api.CheckFields("committeeprint.ByChamber", &b.f); err != nil {
		return nil, err
	}
	return &ByChamber{f: b.f}, nil
}

func (e *ByChamber) Endpoint() string {
	return fmt.Sprintf("committee-print/%d/%s", *e.f.Congress, *e.f.Chamber)
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

// Print returns one committee print by jacket number.
type Print struct {
	api.GetEndpoint
	f printFields
}

// PrintBuilder builds Print.
type PrintBuilder struct {
	f printFields
}

func NewPrintBuilder() *PrintBuilder { return new(PrintBuilder) }

func (b *PrintBuilder) Congress(congress int) *PrintBuilder {
	b.f.Congress = &congress
	return b
}

func (b *PrintBuilder) Chamber(chamber api.CommitteeChamber) *PrintBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *PrintBuilder) JacketNumber(jacketNumber int) *PrintBuilder {
	b.f.JacketNumber = &jacketNumber
	return b
}

func (b *PrintBuilder) Format(format api.Format) *PrintBuilder {
	b.f.Format = format
	return b
}

func (b *PrintBuilder) Build() (*Print, error) {
	if err := api.CheckFields("committeeprint.Print", &b.f); err != nil {
		return nil, err
	}
	return &Print{f: b.f}, nil
}

func (e *Print) Endpoint() string {
	return fmt.Sprintf("committee-print/%d/%s/%d", *e.f.Congress, *e.f.Chamber, *e.f.JacketNumber)
}

func (e *Print) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// Text is GET committee-print/{congress}/{printChamber}/{jacketNumber}/text.
type Text struct {
	api.GetEndpoint
	f textFields
}

// TextBuilder builds Text.
type TextBuilder struct {
	f textFields
}

func NewTextBuilder() *TextBuilder { return new(TextBuilder) }

func (b *TextBuilder) Congress(congress int) *TextBuilder {
	b.f.Congress = &congress
	return b
}

func (b *TextBuilder) Chamber(chamber api.CommitteeChamber) *TextBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *TextBuilder) JacketNumber(jacketNumber int) *TextBuilder {
	b.f.JacketNumber = &jacketNumber
	return b
}

func (b *TextBuilder) Format(format api.Format) *TextBuilder {
	b.f.Format = format
	return b
}

func (b *TextBuilder) Offset(offset int) *TextBuilder {
	b.f.Offset = &offset
	return b
}

func (b *TextBuilder) Limit(limit int) *TextBuilder {
	b.f.Limit = &limit
	return b
}

func (b *TextBuilder) Build() (*Text, error) {
	if err := api.CheckFields("committeeprint.Text", &b.f); err != nil {
		return nil, err
	}
	return &Text{f: b.f}, nil
}

func (e *Text) Endpoint() string {
	return fmt.Sprintf("committee-print/%d/%s/%d/text", *e.f.Congress, *e.f.Chamber, *e.f.JacketNumber)
}

func (e *Text) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
