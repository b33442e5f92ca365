// Package committeereport holds the committee report endpoints.
package committeereport

import (
	"fmt"
	"time"

	"github.com/cdg-go/cdg/api"
)

// List lists committee reports.
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

func (b *ListBuilder) Conference(conference bool) *ListBuilder {
	b.f.Conference = &conference
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
	if err := api.CheckFields("committeereport.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "committee-report"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("conference", e.f.Conference)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// ByCongress is GET committee-report/{congress}.
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

func (b *ByCongressBuilder) Conference(conference bool) *ByCongressBuilder {
	b.f.Conference = &conference
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
	if err := api.CheckFields("committeereport.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("committee-report/%d", *e.f.Congress)
}

func (e *ByCongress) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("conference", e.f.Conference)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// ByType is GET committee-report/{congress}/{reportType}.
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

func (b *ByTypeBuilder) ReportType(reportType api.ReportType) *ByTypeBuilder {
	b.f.ReportType = &reportType
	return b
}

func (b *ByTypeBuilder) Format(format api.Format) *ByTypeBuilder {
	b.f.Format = format
	return b
}

func (b *ByTypeBuilder) Conference(conference bool) *ByTypeBuilder {
	b.f.Conference = &conference
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

func (b *ByTypeBuilder) Build() (*ByType, error) {
	if err := api.CheckFields("committeereport.ByType", &b.f); err != nil {
		return nil, err
	}
	return &ByType{f: b.f}, nil
}

func (e *ByType) Endpoint() string {
	return fmt.Sprintf("committee-report/%d/%s", *e.f.Congress, *e.f.ReportType)
}

func (e *ByType) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("conference", e.f.Conference)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// Report returns one committee report.
type Report struct {
	api.GetEndpoint
	f reportFields
}

// ReportBuilder builds Report.
type ReportBuilder struct {
	f reportFields
}

func NewReportBuilder() *ReportBuilder { return new(ReportBuilder) }

func (b *ReportBuilder) Congress(congress int) *ReportBuilder {
	b.f.Congress = &congress
	return b
}

func (b *ReportBuilder) ReportType(reportType api.ReportType) *ReportBuilder {
	b.f.ReportType = &reportType
	return b
}

func (b *ReportBuilder) ReportNumber(reportNumber int) *ReportBuilder {
	b.f.ReportNumber = &reportNumber
	return b
}

func (b *ReportBuilder) Format(format api.Format) *ReportBuilder {
	b.f.Format = format
	return b
}

func (b *ReportBuilder) Build() (*Report, error) {
	if err := api.CheckFields("committeereport.Report", &b.f); err != nil {
		return nil, err
	}
	return &Report{f: b.f}, nil
}

func (e *Report) Endpoint() string {
	return fmt.Sprintf("committee-report/%d/%s/%d", *e.f.Congress, *e.f.ReportType, *e.f.ReportNumber)
}

func (e *Report) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// Text is GET committee-report/{congress}/{reportType}/{reportNumber}/text.
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

func (b *TextBuilder) ReportType(reportType api.ReportType) *TextBuilder {
	b.f.ReportType = &reportType
	return b
}

func (b *TextBuilder) ReportNumber(reportNumber int) *TextBuilder {
	b.f.ReportNumber = &reportNumber
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
	if err := api.CheckFields("committeereport.Text", &b.f); err != nil {
		return nil, err
	}
	return &Text{f: b.f}, nil
}

func (e *Text) Endpoint() string {
	return fmt.Sprintf("committee-report/%d/%s/%d/text", *e.f.Congress, *e.f.ReportType, *e.f.ReportNumber)
}

func (e *Text) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
