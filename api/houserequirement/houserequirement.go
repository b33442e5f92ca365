// Package houserequirement holds the House requirement endpoints.
package houserequirement

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// List lists House requirements.
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
	if err := api.CheckFields("houserequirement.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "house-requirement"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Requirement is GET house-requirement/{requirementNumber}.
type Requirement struct {
	api.GetEndpoint
	f requirementFields
}

// RequirementBuilder builds Requirement.
type RequirementBuilder struct {
	f requirementFields
}

func NewRequirementBuilder() *RequirementBuilder { return new(RequirementBuilder) }

func (b *RequirementBuilder) RequirementNumber(requirementNumber int) *RequirementBuilder {
	b.f.RequirementNumber = &requirementNumber
	return b
}

func (b *RequirementBuilder) Format(format api.Format) *RequirementBuilder {
	b.f.Format = format
	return b
}

func (b *RequirementBuilder) Build() (*Requirement, error) {
	if err := api.CheckFields("houserequirement.Requirement", &b.f); err != nil {
		return nil, err
	}
	return &Requirement{f: b.f}, nil
}

func (e *Requirement) Endpoint() string {
	return fmt.Sprintf("house-requirement/%d", *e.f.RequirementNumber)
}

func (e *Requirement) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// MatchingCommunications lists communications matching a requirement.
type MatchingCommunications struct {
	api.GetEndpoint
	f matchingFields
}

// MatchingCommunicationsBuilder builds MatchingCommunications.
type MatchingCommunicationsBuilder struct {
	f matchingFields
}

func NewMatchingCommunicationsBuilder() *MatchingCommunicationsBuilder { return new(MatchingCommunicationsBuilder) }

func (b *MatchingCommunicationsBuilder) RequirementNumber(requirementNumber int) *MatchingCommunicationsBuilder {
	b.f.RequirementNumber = &requirementNumber
	return b
}

func (b *MatchingCommunicationsBuilder) Format(format api.Format) *MatchingCommunicationsBuilder {
	b.f.Format = format
	return b
}

func (b *MatchingCommunicationsBuilder) Offset(offset int) *MatchingCommunicationsBuilder {
	b.f.Offset = &offset
	return b
}

func (b *MatchingCommunicationsBuilder) Limit(limit int) *MatchingCommunicationsBuilder {
	b.f.Limit = &limit
	return b
}

func (b *MatchingCommunicationsBuilder) Build() (*MatchingCommunications, error) {
	if err := api.CheckFields("houserequirement.MatchingCommunications", &b.f); err != nil {
		return nil, err
	}
	return &MatchingCommunications{f: b.f}, nil
}

func (e *MatchingCommunications) Endpoint() string {
	return fmt.Sprintf("house-requirement/%d/matching-communications", *e.f.RequirementNumber)
}

func (e *MatchingCommunications) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
