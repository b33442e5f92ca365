// Package boundcongressionalrecord holds the bound Congressional Record
// endpoints, addressed by date.
package boundcongressionalrecord

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// List is GET bound-congressional-record.
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
	if err := api.CheckFields("boundcongressionalrecord.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "bound-congressional-record"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// ByYear is GET bound-congressional-record/{year}.
type ByYear struct {
	api.GetEndpoint
	f yearFields
}

// ByYearBuilder builds ByYear.
type ByYearBuilder struct {
	f yearFields
}

func NewByYearBuilder() *ByYearBuilder { return new(ByYearBuilder) }

func (b *ByYearBuilder) Year(year int) *ByYearBuilder {
	b.f.Year = &year
	return b
}

func (b *ByYearBuilder) Format(format api.Format) *ByYearBuilder {
	b.f.Format = format
	return b
}

func (b *ByYearBuilder) Offset(offset int) *ByYearBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ByYearBuilder) Limit(limit int) *ByYearBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ByYearBuilder) Build() (*ByYear, error) {
	if err := api.CheckFields("boundcongressionalrecord.ByYear", &b.f); err != nil {
		return nil, err
	}
	return &ByYear{f: b.f}, nil
}

func (e *ByYear) Endpoint() string {
	return fmt.Sprintf("bound-congressional-record/%d", *e.f.Year)
}

func (e *ByYear) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// ByMonth is GET bound-congressional-record/{year}/{month}.
type ByMonth struct {
	api.GetEndpoint
	f monthFields
}

// ByMonthBuilder builds ByMonth.
type ByMonthBuilder struct {
	f monthFields
}

func NewByMonthBuilder() *ByMonthBuilder { return new(ByMonthBuilder) }

func (b *ByMonthBuilder) Year(year int) *ByMonthBuilder {
	b.f.Year = &year
	return b
}

func (b *ByMonthBuilder) Month(month int) *ByMonthBuilder {
	b.f.Month = &month
	return b
}

func (b *ByMonthBuilder) Format(format api.Format) *ByMonthBuilder {
	b.f.Format = format
	return b
}

func (b *ByMonthBuilder) Offset(offset int) *ByMonthBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ByMonthBuilder) Limit(limit int) *ByMonthBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ByMonthBuilder) Build() (*ByMonth, error) {
	if err := api.CheckFields("boundcongressionalrecord.ByMonth", &b.f); err != nil {
		return nil, err
	}
	return &ByMonth{f: b.f}, nil
}

func (e *ByMonth) Endpoint() string {
	return fmt.Sprintf("bound-congressional-record/%d/%d", *e.f.Year, *e.f.Month)
}

func (e *ByMonth) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// ByDay is GET bound-congressional-record/{year}/{month}/{day}.
type ByDay struct {
	api.GetEndpoint
	f dayFields
}

// ByDayBuilder builds ByDay.
type ByDayBuilder struct {
	f dayFields
}

func NewByDayBuilder() *ByDayBuilder { return new(ByDayBuilder) }

func (b *ByDayBuilder) Year(year int) *ByDayBuilder {
	b.f.Year = &year
	return b
}

func (b *ByDayBuilder) Month(month int) *ByDayBuilder {
	b.f.Month = &month
	return b
}

func (b *ByDayBuilder) Day(day int) *ByDayBuilder {
	b.f.Day = &day
	return b
}

func (b *ByDayBuilder) Format(format api.Format) *ByDayBuilder {
	b.f.Format = format
	return b
}

func (b *ByDayBuilder) Offset(offset int) *ByDayBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ByDayBuilder) Limit(limit int) *ByDayBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ByDayBuilder) Build() (*ByDay, error) {
	if err := api.CheckFields("boundcongressionalrecord.ByDay", &b.f); err != nil {
		return nil, err
	}
	return &ByDay{f: b.f}, nil
}

func (e *ByDay) Endpoint() string {
	return fmt.Sprintf("bound-congressional-record/%d/%d/%d", *e.f.Year, *e.f.Month, *e.f.Day)
}

func (e *ByDay) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
