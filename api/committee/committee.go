// Package committee holds the committee endpoints.
//
// Committees are listed by chamber and congress and addressed by chamber
// and system code (for example house/hspw00).
package committee

import (
	"fmt"
	"time"

	"github.com/cdg-go/cdg/api"
)

// Committee returns one committee.
type Committee struct {
	api.GetEndpoint
	f committeeFields
}

// CommitteeBuilder builds Committee. Required path segments must be set before Build.
type CommitteeBuilder struct {
	f committeeFields
}

func NewCommitteeBuilder() *CommitteeBuilder { return new(CommitteeBuilder) }

func (b *CommitteeBuilder) Chamber(chamber api.Chamber) *CommitteeBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *CommitteeBuilder) CommitteeCode(committeeCode string) *CommitteeBuilder {
	b.f.CommitteeCode = &committeeCode
	return b
}

func (b *CommitteeBuilder) Format(format api.Format) *CommitteeBuilder {
	b.f.Format = format
	return b
}

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *CommitteeBuilder) Build() (*Committee, error) {
	if err := api.CheckFields("committee.Committee", &b.f); err != nil {
		return nil, err
	}
	return &Committee{f: b.f}, nil
}

func (e *Committee) Endpoint() string {
	return fmt.Sprintf("committee/%s/%s", *e.f.Chamber, *e.f.CommitteeCode)
}

func (e *Committee) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// Bills lists legislation associated with a committee.
type Bills struct {
	api.GetEndpoint
	f itemWindowFields
}

// BillsBuilder builds Bills.
type BillsBuilder struct {
	f itemWindowFields
}

func NewBillsBuilder() *BillsBuilder { return new(BillsBuilder) }

func (b *BillsBuilder) Chamber(chamber api.Chamber) *BillsBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *BillsBuilder) CommitteeCode(committeeCode string) *BillsBuilder {
	b.f.CommitteeCode = &committeeCode
	return b
}

func (b *BillsBuilder) Format(format api.Format) *BillsBuilder {
	b.f.Format = format
	return b
}

func (b *BillsBuilder) Offset(offset int) *BillsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *BillsBuilder) Limit(limit int) *BillsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *BillsBuilder) FromDateTime(fromDateTime time.Time) *BillsBuilder {
	b.f.FromDateTime = &fromDateTime
	return b
}

func (b *BillsBuilder) ToDateTime(toDateTime time.Time) *BillsBuilder {
	b.f.ToDateTime = &toDateTime
	return b
}

func (b *BillsBuilder) Build() (*Bills, error) {
	if err := api.CheckFields("committee.Bills", &b.f); err != nil {
		return nil, err
	}
	return &Bills{f: b.f}, nil
}

func (e *Bills) Endpoint() string {
	return fmt.Sprintf("committee/%s/%s/bills", *e.f.Chamber, *e.f.CommitteeCode)
}

func (e *Bills) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// Reports is GET committee/{chamber}/{committeeCode}/reports.
type Reports struct {
	api.GetEndpoint
	f itemWindowFields
}

// ReportsBuilder builds Reports.
type ReportsBuilder struct {
	f itemWindowFields
}

func NewReportsBuilder() *ReportsBuilder { return new(ReportsBuilder) }

func (b *ReportsBuilder) Chamber(chamber api.Chamber) *ReportsBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *ReportsBuilder) CommitteeCode(committeeCode string) *ReportsBuilder {
	b.f.CommitteeCode = &committeeCode
	return b
}

func (b *ReportsBuilder) Format(format api.Format) *ReportsBuilder {
	b.f.Format = format
	return b
}

func (b *ReportsBuilder) Offset(offset int) *ReportsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ReportsBuilder) Limit(limit int) *ReportsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ReportsBuilder) FromDateTime(fromDateTime time.Time) *ReportsBuilder {
	b.f.FromDateTime = &fromDateTime
	return b
}

func (b *ReportsBuilder) ToDateTime(toDateTime time.Time) *ReportsBuilder {
	b.f.ToDateTime = &toDateTime
	return b
}

func (b *ReportsBuilder) Build() (*Reports, error) {
	if err := api.CheckFields("committee.Reports", &b.f); err != nil {
		return nil, err
	}
	return &Reports{f: b.f}, nil
}

func (e *Reports) Endpoint() string {
	return fmt.Sprintf("committee/%s/%s/reports", *e.f.Chamber, *e.f.CommitteeCode)
}

func (e *Reports) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	return p
}

// Nominations lists nominations referred to a Senate committee.
type Nominations struct {
	api.GetEndpoint
	f itemPageFields
}

// NominationsBuilder builds Nominations.
type NominationsBuilder struct {
	f itemPageFields
}

func NewNominationsBuilder() *NominationsBuilder { return new(NominationsBuilder) }

func (b *NominationsBuilder) Chamber(chamber api.Chamber) *NominationsBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *NominationsBuilder) CommitteeCode(committeeCode string) *NominationsBuilder {
	b.f.CommitteeCode = &committeeCode
	return b
}

func (b *NominationsBuilder) Format(format api.Format) *NominationsBuilder {
	b.f.Format = format
	return b
}

func (b *NominationsBuilder) Offset(offset int) *NominationsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *NominationsBuilder) Limit(limit int) *NominationsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *NominationsBuilder) Build() (*Nominations, error) {
	if err := api.CheckFields("committee.Nominations", &b.f); err != nil {
		return nil, err
	}
	return &Nominations{f: b.f}, nil
}

func (e *Nominations) Endpoint() string {
	return fmt.Sprintf("committee/%s/%s/nominations", *e.f.Chamber, *e.f.CommitteeCode)
}

func (e *Nominations) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// HouseCommunications is GET committee/{chamber}/{committeeCode}/house-communication.
type HouseCommunications struct {
	api.GetEndpoint
	f itemPageFields
}

// HouseCommunicationsBuilder builds HouseCommunications.
type HouseCommunicationsBuilder struct {
	f itemPageFields
}

func NewHouseCommunicationsBuilder() *HouseCommunicationsBuilder { return new(HouseCommunicationsBuilder) }

func (b *HouseCommunicationsBuilder) Chamber(chamber api.Chamber) *HouseCommunicationsBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *HouseCommunicationsBuilder) CommitteeCode(committeeCode string) *HouseCommunicationsBuilder {
	b.f.CommitteeCode = &committeeCode
	return b
}

func (b *HouseCommunicationsBuilder) Format(format api.Format) *HouseCommunicationsBuilder {
	b.f.Format = format
	return b
}

func (b *HouseCommunicationsBuilder) Offset(offset int) *HouseCommunicationsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *HouseCommunicationsBuilder) Limit(limit int) *HouseCommunicationsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *HouseCommunicationsBuilder) Build() (*HouseCommunications, error) {
	if err := api.CheckFields("committee.HouseCommunications", &b.f); err != nil {
		return nil, err
	}
	return &HouseCommunications{f: b.f}, nil
}

func (e *HouseCommunications) Endpoint() string {
	return fmt.Sprintf("committee/%s/%s/house-communication", *e.f.Chamber, *e.f.CommitteeCode)
}

func (e *HouseCommunications) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// SenateCommunications is GET committee/{chamber}/{committeeCode}/senate-communication.
type SenateCommunications struct {
	api.GetEndpoint
	f itemPageFields
}

// SenateCommunicationsBuilder builds SenateCommunications.
type SenateCommunicationsBuilder struct {
	f itemPageFields
}

func NewSenateCommunicationsBuilder() *SenateCommunicationsBuilder { return new(SenateCommunicationsBuilder) }

func (b *SenateCommunicationsBuilder) Chamber(chamber api.Chamber) *SenateCommunicationsBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *SenateCommunicationsBuilder) CommitteeCode(committeeCode string) *SenateCommunicationsBuilder {
	b.f.CommitteeCode = &committeeCode
	return b
}

func (b *SenateCommunicationsBuilder) Format(format api.Format) *SenateCommunicationsBuilder {
	b.f.Format = format
	return b
}

func (b *SenateCommunicationsBuilder) Offset(offset int) *SenateCommunicationsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *SenateCommunicationsBuilder) Limit(limit int) *SenateCommunicationsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *SenateCommunicationsBuilder) Build() (*SenateCommunications, error) {
	if err := api.CheckFields("committee.SenateCommunications", &b.f); err != nil {
		return nil, err
	}
	return &SenateCommunications{f: b.f}, nil
}

func (e *SenateCommunications) Endpoint() string {
	return fmt.Sprintf("committee/%s/%s/senate-communication", *e.f.Chamber, *e.f.CommitteeCode)
}

func (e *SenateCommunications) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
