// Package member holds the member endpoints. Members are addressed by
// bioguide ID, or listed by state, district and congress.
package member

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// Member returns one member.
type Member struct {
	api.GetEndpoint
	f memberFields
}

// MemberBuilder builds Member. Required path segments must be set before Build.
type MemberBuilder struct {
	f memberFields
}

func NewMemberBuilder() *MemberBuilder { return new(MemberBuilder) }

func (b *MemberBuilder) BioguideID(bioguideID string) *MemberBuilder {
	b.f.BioguideID = &bioguideID
	return b
}

func (b *MemberBuilder) Format(format api.Format) *MemberBuilder {
	b.f.Format = format
	return b
}

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *MemberBuilder) Build() (*Member, error) {
	if err := api.CheckFields("member.Member", &b.f); err != nil {
		return nil, err
	}
	return &Member{f: b.f}, nil
}

func (e *Member) Endpoint() string {
	return fmt.Sprintf("member/%s", *e.f.BioguideID)
}

func (e *Member) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// SponsoredLegislation is GET member/{bioguideId}/sponsored-legislation.
type SponsoredLegislation struct {
	api.GetEndpoint
	f legislationFields
}

// SponsoredLegislationBuilder builds SponsoredLegislation.
type SponsoredLegislationBuilder struct {
	f legislationFields
}

func NewSponsoredLegislationBuilder() *SponsoredLegislationBuilder { return new(SponsoredLegislationBuilder) }

func (b *SponsoredLegislationBuilder) BioguideID(bioguideID string) *SponsoredLegislationBuilder {
	b.f.BioguideID = &bioguideID
	return b
}

func (b *SponsoredLegislationBuilder) Format(format api.Format) *SponsoredLegislationBuilder {
	b.f.Format = format
	return b
}

func (b *SponsoredLegislationBuilder) Offset(offset int) *SponsoredLegislationBuilder {
	b.f.Offset = &offset
	return b
}

func (b *SponsoredLegislationBuilder) Limit(limit int) *SponsoredLegislationBuilder {
	b.f.Limit = &limit
	return b
}

func (b *SponsoredLegislationBuilder) Build() (*SponsoredLegislation, error) {
	if err := api.CheckFields("member.SponsoredLegislation", &b.f); err != nil {
		return nil, err
	}
	return &SponsoredLegislation{f: b.f}, nil
}

func (e *SponsoredLegislation) Endpoint() string {
	return fmt.Sprintf("member/%s/sponsored-legislation", *e.f.BioguideID)
}

func (e *SponsoredLegislation) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// CosponsoredLegislation is GET member/{bioguideId}/cosponsored-legislation.
type CosponsoredLegislation struct {
	api.GetEndpoint
	f legislationFields
}

// CosponsoredLegislationBuilder builds CosponsoredLegislation.
type CosponsoredLegislationBuilder struct {
	f legislationFields
}

func NewCosponsoredLegislationBuilder() *CosponsoredLegislationBuilder { return new(CosponsoredLegislationBuilder) }

func (b *CosponsoredLegislationBuilder) BioguideID(bioguideID string) *CosponsoredLegislationBuilder {
	b.f.BioguideID = &bioguideID
	return b
}

func (b *CosponsoredLegislationBuilder) Format(format api.Format) *CosponsoredLegislationBuilder {
	b.f.Format = format
	return b
}

func (b *CosponsoredLegislationBuilder) Offset(offset int) *CosponsoredLegislationBuilder {
	b.f.Offset = &offset
	return b
}

func (b *CosponsoredLegislationBuilder) Limit(limit int) *CosponsoredLegislationBuilder {
	b.f.Limit = &limit
	return b
}

func (b *CosponsoredLegislationBuilder) Build() (*CosponsoredLegislation, error) {
	if err := api.CheckFields("member.CosponsoredLegislation", &b.f); err != nil {
		return nil, err
	}
	return &CosponsoredLegislation{f: b.f}, nil
}

func (e *CosponsoredLegislation) Endpoint() string {
	return fmt.Sprintf("member/%s/cosponsored-legislation", *e.f.BioguideID)
}

func (e *CosponsoredLegislation) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
