// Package crsreport holds the Congressional Research Service report
// endpoints.
package crsreport

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// List lists CRS reports.
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
	if err := api.CheckFields("crsreport.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "crsreport"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Report returns one CRS report.
type Report struct {
	api.GetEndpoint
	f reportFields
}

// ReportBuilder builds Report.
type ReportBuilder struct {
	f reportFields
}

func NewReportBuilder() *ReportBuilder { return new(ReportBuilder) }

func (b *ReportBuilder) ReportNumber(reportNumber string) *ReportBuilder {
	b.f.ReportNumber = &reportNumber
	return b
}

func (b *ReportBuilder) Format(format api.Format) *ReportBuilder {
	b.f.Format = format
	return b
}

func (b *ReportBuilder) Build() (*Report, error) {
	if err := api.CheckFields("crsreport.Report", &b.f); err != nil {
		return nil, err
	}
	return &Report{f: b.f}, nil
}

func (e *Report) Endpoint() string {
	return fmt.Sprintf("crsreport/%s", *e.f.ReportNumber)
}

func (e *Report) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}
