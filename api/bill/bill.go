// Package bill holds the bill endpoints.
//
// A bill is addressed by congress, type and number:
//
//	e, err := bill.NewBillBuilder().
//		Congress(117).
//		BillType(api.BillTypeHR).
//		BillNumber(3076).
//		Build()
//
// The list endpoints accept an update-date window and a sort order.
package bill

import (
	"fmt"
	"time"

	"github.com/cdg-go/cdg/api"
)

// Bill returns the detail of one bill.
type Bill struct {
	api.GetEndpoint
	f billFields
}

// BillBuilder builds Bill. Required path segments must be set before Build.
type BillBuilder struct {
	f billFields
}

func NewBillBuilder() *BillBuilder { return new(BillBuilder) }

func (b *BillBuilder) Congress(congress int) *BillBuilder {
	b.f.Congress = &congress
	return b
}

func (b *BillBuilder) BillType(billType api.BillType) *BillBuilder {
	b.f.BillType = &billType
	return b
}

func (b *BillBuilder) BillNumber(billNumber int) *BillBuilder {
	b.f.BillNumber = &billNumber
	return b
}

func (b *BillBuilder) Format(format api.Format) *BillBuilder {
	b.f.Format = format
	return b
}

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *BillBuilder) Build() (*Bill, error) {
	if err := api.CheckFields("bill.Bill", &b.f); err != nil {
		return nil, err
	}
	return &Bill{f: b.f}, nil
}

func (e *Bill) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *Bill) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// Actions is GET bill/{congress}/{billType}/{billNumber}/actions.
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

func (b *ActionsBuilder) BillType(billType api.BillType) *ActionsBuilder {
	b.f.BillType = &billType
	return b
}

func (b *ActionsBuilder) BillNumber(billNumber int) *ActionsBuilder {
	b.f.BillNumber = &billNumber
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
	if err := api.CheckFields("bill.Actions", &b.f); err != nil {
		return nil, err
	}
	return &Actions{f: b.f}, nil
}

func (e *Actions) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d/actions", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *Actions) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Amendments is GET bill/{congress}/{billType}/{billNumber}/amendments.
type Amendments struct {
	api.GetEndpoint
	f itemPageFields
}

// AmendmentsBuilder builds Amendments.
type AmendmentsBuilder struct {
	f itemPageFields
}

func NewAmendmentsBuilder() *AmendmentsBuilder { return new(AmendmentsBuilder) }

func (b *AmendmentsBuilder) Congress(congress int) *AmendmentsBuilder {
	b.f.Congress = &congress
	return b
}

func (b *AmendmentsBuilder) BillType(billType api.BillType) *AmendmentsBuilder {
	b.f.BillType = &billType
	return b
}

func (b *AmendmentsBuilder) BillNumber(billNumber int) *AmendmentsBuilder {
	b.f.BillNumber = &billNumber
	return b
}

func (b *AmendmentsBuilder) Format(format api.Format) *AmendmentsBuilder {
	b.f.Format = format
	return b
}

func (b *AmendmentsBuilder) Offset(offset int) *AmendmentsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *AmendmentsBuilder) Limit(limit int) *AmendmentsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *AmendmentsBuilder) Build() (*Amendments, error) {
	if err := api.CheckFields("bill.Amendments", &b.f); err != nil {
		return nil, err
	}
	return &Amendments{f: b.f}, nil
}

func (e *Amendments) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d/amendments", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *Amendments) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Committees lists committees associated with a bill.
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

func (b *CommitteesBuilder) BillType(billType api.BillType) *CommitteesBuilder {
	b.f.BillType = &billType
	return b
}

func (b *CommitteesBuilder) BillNumber(billNumber int) *CommitteesBuilder {
	b.f.BillNumber = &billNumber
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
	if err := api.CheckFields("bill.Committees", &b.f); err != nil {
		return nil, err
	}
	return &Committees{f: b.f}, nil
}

func (e *Committees) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d/committees", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *Committees) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Cosponsors is GET bill/{congress}/{billType}/{billNumber}/cosponsors.
type Cosponsors struct {
	api.GetEndpoint
	f itemWindowFields
}

// CosponsorsBuilder builds Cosponsors.
type CosponsorsBuilder struct {
	f itemWindowFields
}

func NewCosponsorsBuilder() *CosponsorsBuilder { return new(CosponsorsBuilder) }

func (b *CosponsorsBuilder) Congress(congress int) *CosponsorsBuilder {
	b.f.Congress = &congress
	return b
}

func (b *CosponsorsBuilder) BillType(billType api.BillType) *CosponsorsBuilder {
	b.f.BillType = &billType
	return b
}

func (b *CosponsorsBuilder) BillNumber(billNumber int) *CosponsorsBuilder {
	b.f.BillNumber = &billNumber
	return b
}

func (b *CosponsorsBuilder) Format(format api.Format) *CosponsorsBuilder {
	b.f.Format = format
	return b
}

func (b *CosponsorsBuilder) Offset(offset int) *CosponsorsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *CosponsorsBuilder) Limit(limit int) *CosponsorsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *CosponsorsBuilder) FromDateTime(fromDateTime time.Time) *CosponsorsBuilder {
	b.f.FromDateTime = &fromDateTime
	return b
}

func (b *CosponsorsBuilder) ToDateTime(toDateTime time.Time) *CosponsorsBuilder {
	b.f.ToDateTime = &toDateTime
	return b
}

func (b *CosponsorsBuilder) Build() (*Cosponsors, error) {
	if err := api.CheckFields("bill.Cosponsors", &b.f); err != nil {
		return nil, err
	}
	return &Cosponsors{f: b.f}, nil
}

func (e *Cosponsors) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d/cosponsors", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *Cosponsors) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// RelatedBills is GET bill/{congress}/{billType}/{billNumber}/relatedbills.
type RelatedBills struct {
	api.GetEndpoint
	f itemPageFields
}

// RelatedBillsBuilder builds RelatedBills.
type RelatedBillsBuilder struct {
	f itemPageFields
}

func NewRelatedBillsBuilder() *RelatedBillsBuilder { return new(RelatedBillsBuilder) }

func (b *RelatedBillsBuilder) Congress(congress int) *RelatedBillsBuilder {
	b.f.Congress = &congress
	return b
}

func (b *RelatedBillsBuilder) BillType(billType api.BillType) *RelatedBillsBuilder {
	b.f.BillType = &billType
	return b
}

func (b *RelatedBillsBuilder) BillNumber(billNumber int) *RelatedBillsBuilder {
	b.f.BillNumber = &billNumber
	return b
}

func (b *RelatedBillsBuilder) Format(format api.Format) *RelatedBillsBuilder {
	b.f.Format = format
	return b
}

func (b *RelatedBillsBuilder) Offset(offset int) *RelatedBillsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *RelatedBillsBuilder) Limit(limit int) *RelatedBillsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *RelatedBillsBuilder) Build() (*RelatedBills, error) {
	if err := api.CheckFields("bill.RelatedBills", &b.f); err != nil {
		return nil, err
	}
	return &RelatedBills{f: b.f}, nil
}

func (e *RelatedBills) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d/relatedbills", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *RelatedBills) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Subjects lists the legislative subjects of a bill.
type Subjects struct {
	api.GetEndpoint
	f itemWindowFields
}

// SubjectsBuilder builds Subjects.
type SubjectsBuilder struct {
	f itemWindowFields
}

func NewSubjectsBuilder() *SubjectsBuilder { return new(SubjectsBuilder) }

func (b *SubjectsBuilder) Congress(congress int) *SubjectsBuilder {
	b.f.Congress = &congress
	return b
}

func (b *SubjectsBuilder) BillType(billType api.BillType) *SubjectsBuilder {
	b.f.BillType = &billType
	return b
}

func (b *SubjectsBuilder) BillNumber(billNumber int) *SubjectsBuilder {
	b.f.BillNumber = &billNumber
	return b
}

func (b *SubjectsBuilder) Format(format api.Format) *SubjectsBuilder {
	b.f.Format = format
	return b
}

func (b *SubjectsBuilder) Offset(offset int) *SubjectsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *SubjectsBuilder) Limit(limit int) *SubjectsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *SubjectsBuilder) FromDateTime(fromDateTime time.Time) *SubjectsBuilder {
	b.f.FromDateTime = &fromDateTime
	return b
}

func (b *SubjectsBuilder) ToDateTime(toDateTime time.Time) *SubjectsBuilder {
	b.f.ToDateTime = &toDateTime
	return b
}

func (b *SubjectsBuilder) Build() (*Subjects, error) {
	if err := api.CheckFields("bill.Subjects", &b.f); err != nil {
		return nil, err
	}
	return &Subjects{f: b.f}, nil
}

func (e *Subjects) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d/subjects", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *Subjects) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// Summaries is GET bill/{congress}/{billType}/{billNumber}/summaries.
type Summaries struct {
	api.GetEndpoint
	f itemPageFields
}

// SummariesBuilder builds Summaries.
type SummariesBuilder struct {
	f itemPageFields
}

func NewSummariesBuilder() *SummariesBuilder { return new(SummariesBuilder) }

func (b *SummariesBuilder) Congress(congress int) *SummariesBuilder {
	b.f.Congress = &congress
	return b
}

func (b *SummariesBuilder) BillType(billType api.BillType) *SummariesBuilder {
	b.f.BillType = &billType
	return b
}

func (b *SummariesBuilder) BillNumber(billNumber int) *SummariesBuilder {
	b.f.BillNumber = &billNumber
	return b
}

func (b *SummariesBuilder) Format(format api.Format) *SummariesBuilder {
	b.f.Format = format
	return b
}

func (b *SummariesBuilder) Offset(offset int) *SummariesBuilder {
	b.f.Offset = &offset
	return b
}

func (b *SummariesBuilder) Limit(limit int) *SummariesBuilder {
	b.f.Limit = &limit
	return b
}

func (b *SummariesBuilder) Build() (*Summaries, error) {
	if err := api.CheckFields("bill.Summaries", &b.f); err != nil {
		return nil, err
	}
	return &Summaries{f: b.f}, nil
}

func (e *Summaries) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d/summaries", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *Summaries) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Text lists text versions of a bill.
type Text struct {
	api.GetEndpoint
	f itemPageFields
}

// TextBuilder builds Text.
type TextBuilder struct {
	f itemPageFields
}

func NewTextBuilder() *TextBuilder { return new(TextBuilder) }

func (b *TextBuilder) Congress(congress int) *TextBuilder {
	b.f.Congress = &congress
	return b
}

func (b *TextBuilder) BillType(billType api.BillType) *TextBuilder {
	b.f.BillType = &billType
	return b
}

func (b *TextBuilder) BillNumber(billNumber int) *TextBuilder {
	b.f.BillNumber = &billNumber
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
	if err := api.CheckFields("bill.Text", &b.f); err != nil {
		return nil, err
	}
	return &Text{f: b.f}, nil
}

func (e *Text) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d/text", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *Text) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Titles is GET bill/{congress}/{billType}/{billNumber}/titles.
type Titles struct {
	api.GetEndpoint
	f itemPageFields
}

// TitlesBuilder builds Titles.
type TitlesBuilder struct {
	f itemPageFields
}

func NewTitlesBuilder() *TitlesBuilder { return new(TitlesBuilder) }

func (b *TitlesBuilder) Congress(congress int) *TitlesBuilder {
	b.f.Congress = &congress
	return b
}

func (b *TitlesBuilder) BillType(billType api.BillType) *TitlesBuilder {
	b.f.BillType = &billType
	return b
}

func (b *TitlesBuilder) BillNumber(billNumber int) *TitlesBuilder {
	b.f.BillNumber = &billNumber
	return b
}

func (b *TitlesBuilder) Format(format api.Format) *TitlesBuilder {
	b.f.Format = format
	return b
}

func (b *TitlesBuilder) Offset(offset int) *TitlesBuilder {
	b.f.Offset = &offset
	return b
}

func (b *TitlesBuilder) Limit(limit int) *TitlesBuilder {
	b.f.Limit = &limit
	return b
}

func (b *TitlesBuilder) Build() (*Titles, error) {
	if err := api.CheckFields("bill.Titles", &b.f); err != nil {
		return nil, err
	}
	return &Titles{f: b.f}, nil
}

func (e *Titles) Endpoint() string {
	return fmt.Sprintf("bill/%d/%s/%d/titles", *e.f.Congress, *e.f.BillType, *e.f.BillNumber)
}

func (e *Titles) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
