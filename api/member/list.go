package member

import (
	"fmt"
	"time"

	"github.com/cdg-go/cdg/api"
)

// List lists members of congress.
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

func (b *ListBuilder) CurrentMember(currentMember bool) *ListBuilder {
	b.f.CurrentMember = &currentMember
	return b
}

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *ListBuilder) Build() (*List, error) {
	if err := api.CheckFields("member.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "member"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("fromDateTime", e.f.FromDateTime)
	p.PushOpt("toDateTime", e.f.ToDateTime)
	p.PushOpt("currentMember", e.f.CurrentMember)
	return p
}

// ByState lists members for a state.
type ByState struct {
	api.GetEndpoint
	f stateFields
}

// ByStateBuilder builds ByState.
type ByStateBuilder struct {
	f stateFields
}

func NewByStateBuilder() *ByStateBuilder { return new(ByStateBuilder) }

func (b *ByStateBuilder) StateCode(stateCode api.StateCode) *ByStateBuilder {
	b.f.StateCode = &stateCode
	return b
}

func (b *ByStateBuilder) Format(format api.Format) *ByStateBuilder {
	b.f.Format = format
	return b
}

func (b *ByStateBuilder) CurrentMember(currentMember bool) *ByStateBuilder {
	b.f.CurrentMember = &currentMember
	return b
}

func (b *ByStateBuilder) Build() (*ByState, error) {
	if err := api.CheckFields("member.ByState", &b.f); err != nil {
		return nil, err
	}
	return &ByState{f: b.f}, nil
}

func (e *ByState) Endpoint() string {
	return fmt.Sprintf("member/%s", *e.f.StateCode)
}

func (e *ByState) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("currentMember", e.f.CurrentMember)
	return p
}

// ByStateDistrict lists members for a congressional district.
type ByStateDistrict struct {
	api.GetEndpoint
	f districtFields
}

// ByStateDistrictBuilder builds ByStateDistrict.
type ByStateDistrictBuilder struct {
	f districtFields
}

func NewByStateDistrictBuilder() *ByStateDistrictBuilder { return new(ByStateDistrictBuilder) }

func (b *ByStateDistrictBuilder) StateCode(stateCode api.StateCode) *ByStateDistrictBuilder {
	b.f.StateCode = &stateCode
	return b
}

func (b *ByStateDistrictBuilder) District(district int) *ByStateDistrictBuilder {
	b.f.District = &district
	return b
}

func (b *ByStateDistrictBuilder) Format(format api.Format) *ByStateDistrictBuilder {
	b.f.Format = format
	return b
}

func (b *ByStateDistrictBuilder) CurrentMember(currentMember bool) *ByStateDistrictBuilder {
	b.f.CurrentMember = &currentMember
	return b
}

func (b *ByStateDistrictBuilder) Build() (*ByStateDistrict, error) {
	if err := api.CheckFields("member.ByStateDistrict", &b.f); err != nil {
		return nil, err
	}
	return &ByStateDistrict{f: b.f}, nil
}

func (e *ByStateDistrict) Endpoint() string {
	return fmt.Sprintf("member/%s/%d", *e.f.StateCode, *e.f.District)
}

func (e *ByStateDistrict) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("currentMember", e.f.CurrentMember)
	return p
}

// ByCongress lists members of a congress.
type ByCongress struct {
	api.GetEndpoint
	f congressFields
}

// ByCongressBuilder builds ByCongress.
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

func (b *ByCongressBuilder) CurrentMember(currentMember bool) *ByCongressBuilder {
	b.f.CurrentMember = &currentMember
	return b
}

func (b *ByCongressBuilder) Build() (*ByCongress, error) {
	if err := api.CheckFields("member.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("member/congress/%d", *e.f.Congress)
}

func (e *ByCongress) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	p.PushOpt("currentMember", e.f.CurrentMember)
	return p
}

// ByCongressStateDistrict lists members for a district in a congress.
type ByCongressStateDistrict struct {
	api.GetEndpoint
	f congressDistrictFields
}

// ByCongressStateDistrictBuilder builds ByCongressStateDistrict.
type ByCongressStateDistrictBuilder struct {
	f congressDistrictFields
}

func NewByCongressStateDistrictBuilder() *ByCongressStateDistrictBuilder { return new(ByCongressStateDistrictBuilder) }

func (b *ByCongressStateDistrictBuilder) Congress(congress int) *ByCongressStateDistrictBuilder {
	b.f.Congress = &congress
	return b
}

func (b *ByCongressStateDistrictBuilder) StateCode(stateCode api.StateCode) *ByCongressStateDistrictBuilder {
	b.f.StateCode = &stateCode
	return b
}

func (b *ByCongressStateDistrictBuilder) District(district int) *ByCongressStateDistrictBuilder {
	b.f.District = &district
	return b
}

func (b *ByCongressStateDistrictBuilder) Format(format api.Format) *ByCongressStateDistrictBuilder {
	b.f.Format = format
	return b
}

func (b *ByCongressStateDistrictBuilder) CurrentMember(currentMember bool) *ByCongressStateDistrictBuilder {
	b.f.CurrentMember = &currentMember
	return b
}

func (b *ByCongressStateDistrictBuilder) Build() (*ByCongressStateDistrict, error) {
	if err := api.CheckFields("member.ByCongressStateDistrict", &b.f); err != nil {
		return nil, err
	}
	return &ByCongressStateDistrict{f: b.f}, nil
}

func (e *ByCongressStateDistrict) Endpoint() string {
	return fmt.Sprintf("member/congress/%d/%s/%d", *e.f.Congress, *e.f.StateCode, *e.f.District)
}

func (e *ByCongressStateDistrict) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("currentMember", e.f.CurrentMember)
	return p
}
