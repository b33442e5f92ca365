// Package senatecommunication holds the Senate communication endpoints.
package senatecommunication

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// List lists Senate communications.
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
	if err := api.CheckFields("senatecommunication.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "senate-communication"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// ByCongress is GET senate-communication/{congress}.
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

func (b *ByCongressBuilder) Build() (*ByCongress, error) {
	if err := api.CheckFields("senatecommunication.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("senate-communication/%d", *e.f.Congress)
}

func (e *ByCongress) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// ByType is GET senate-communication/{congress}/{senateCommunicationType}.
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

func (b *ByTypeBuilder) CommunicationType(communicationType api.SenateCommunicationType) *ByTypeBuilder {
	b.f.CommunicationType = &communicationType
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
	if err := api.CheckFields("senatecommunication.ByType", &b.f); err != nil {
		return nil, err
	}
	return &ByType{f: b.f}, nil
}

func (e *ByType) Endpoint() string {
	return fmt.Sprintf("senate-communication/%d/%s", *e.f.Congress, *e.f.CommunicationType)
}

func (e *ByType) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Communication returns one Senate communication.
type Communication struct {
	api.GetEndpoint
	f communicationFields
}

// CommunicationBuilder builds Communication.
type CommunicationBuilder struct {
	f communicationFields
}

func NewCommunicationBuilder() *CommunicationBuilder { return new(CommunicationBuilder) }

func (b *CommunicationBuilder) Congress(congress int) *CommunicationBuilder {
	b.f.Congress = &congress
	return b
}

func (b *CommunicationBuilder) CommunicationType(communicationType api.SenateCommunicationType) *CommunicationBuilder {
	b.f.CommunicationType = &communicationType
	return b
}

func (b *CommunicationBuilder) CommunicationNumber(communicationNumber int) *CommunicationBuilder {
	b.f.CommunicationNumber = &communicationNumber
	return b
}

func (b *CommunicationBuilder) Format(format api.Format) *CommunicationBuilder {
	b.f.Format = format
	return b
}

func (b *CommunicationBuilder) Build() (*Communication, error) {
	if err := api.CheckFields("senatecommunication.Communication", &b.f); err != nil {
		return nil, err
	}
	return &Communication{f: b.f}, nil
}

func (e *Communication) Endpoint() string {
	return fmt.Sprintf("senate-communication/%d/%s/%d", *e.f.Congress, *e.f.CommunicationType, *e.f.CommunicationNumber)
}

func (e *Communication) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}
