// Package amendment holds the amendment endpoints: amendments to bills and
// resolutions, their actions, cosponsors, amendments to them and text.
package amendment

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// Amendment returns a single amendment.
type Amendment struct {
	api.GetEndpoint
	f amendmentFields
}

// AmendmentBuilder builds Amendment. Required path segments must be set before Build.
type AmendmentBuilder struct {
	f amendmentFields
}

func NewAmendmentBuilder() *AmendmentBuilder { return new(AmendmentBuilder) }

func (b *AmendmentBuilder) Congress(congress int) *AmendmentBuilder {
	b.f.Congress = &congress
	return b
}

func (b *AmendmentBuilder) AmendmentType(amendmentType api.AmendmentType) *AmendmentBuilder {
	b.f.AmendmentType = &amendmentType
	return b
}

func (b *AmendmentBuilder) AmendmentNumber(amendmentNumber int) *AmendmentBuilder {
	b.f.AmendmentNumber = &amendmentNumber
	return b
}

func (b *AmendmentBuilder) Format(format api.Format) *AmendmentBuilder {
	b.f.Format = format
	return b
}

// Build returns the endpoint, or an error naming the first required field
// that was not set.
func (b *AmendmentBuilder) Build() (*Amendment, error) {
	if err := api.CheckFields("amendment.Amendment", &b.f); err != nil {
		return nil, err
	}
	return &Amendment{f: b.f}, nil
}

func (e *Amendment) Endpoint() string {
	return fmt.Sprintf("amendment/%d/%s/%d", *e.f.Congress, *e.f.AmendmentType, *e.f.AmendmentNumber)
}

func (e *Amendment) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}

// Actions is GET amendment/{congress}/{amendmentType}/{amendmentNumber}/actions.
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

func (b *ActionsBuilder) AmendmentType(amendmentType api.AmendmentType) *ActionsBuilder {
	b.f.AmendmentType = &amendmentType
	return b
}

func (b *ActionsBuilder) AmendmentNumber(amendmentNumber int) *ActionsBuilder {
	b.f.AmendmentNumber = &amendmentNumber
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
	if err := api.CheckFields("amendment.Actions", &b.f); err != nil {
		return nil, err
	}
	return &Actions{f: b.f}, nil
}

func (e *Actions) Endpoint() string {
	return fmt.Sprintf("amendment/%d/%s/%d/actions", *e.f.Congress, *e.f.AmendmentType, *e.f.AmendmentNumber)
}

func (e *Actions) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Cosponsors is GET amendment/{congress}/{amendmentType}/{amendmentNumber}/cosponsors.
type Cosponsors struct {
	api.GetEndpoint
	f itemPageFields
}

// CosponsorsBuilder builds Cosponsors.
type CosponsorsBuilder struct {
	f itemPageFields
}

func NewCosponsorsBuilder() *CosponsorsBuilder { return new(CosponsorsBuilder) }

func (b *CosponsorsBuilder) Congress(congress int) *CosponsorsBuilder {
	b.f.Congress = &congress
	return b
}

func (b *CosponsorsBuilder) AmendmentType(amendmentType api.AmendmentType) *CosponsorsBuilder {
	b.f.AmendmentType = &amendmentType
	return b
}

func (b *CosponsorsBuilder) AmendmentNumber(amendmentNumber int) *CosponsorsBuilder {
	b.f.AmendmentNumber = &amendmentNumber
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

func (b *CosponsorsBuilder) Build() (*Cosponsors, error) {
	if err := api.CheckFields("amendment.Cosponsors", &b.f); err != nil {
		return nil, err
	}
	return &Cosponsors{f: b.f}, nil
}

func (e *Cosponsors) Endpoint() string {
	return fmt.Sprintf("amendment/%d/%s/%d/cosponsors", *e.f.Congress, *e.f.AmendmentType, *e.f.AmendmentNumber)
}

func (e *Cosponsors) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Amendments lists amendments to an amendment.
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

func (b *AmendmentsBuilder) AmendmentType(amendmentType api.AmendmentType) *AmendmentsBuilder {
	b.f.AmendmentType = &amendmentType
	return b
}

func (b *AmendmentsBuilder) AmendmentNumber(amendmentNumber int) *AmendmentsBuilder {
	b.f.AmendmentNumber = &amendmentNumber
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
	if err := api.CheckFields("amendment.Amendments", &b.f); err != nil {
		return nil, err
	}
	return &Amendments{f: b.f}, nil
}

func (e *Amendments) Endpoint() string {
	return fmt.Sprintf("amendment/%d/%s/%d/amendments", *e.f.Congress, *e.f.AmendmentType, *e.f.AmendmentNumber)
}

func (e *Amendments) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Text lists text versions of an amendment. Only available from the 117th Congress onwards.
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

func (b *TextBuilder) AmendmentType(amendmentType api.AmendmentType) *TextBuilder {
	b.f.AmendmentType = &amendmentType
	return b
}

func (b *TextBuilder) AmendmentNumber(amendmentNumber int) *TextBuilder {
	b.f.AmendmentNumber = &amendmentNumber
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
	if err := api.CheckFields("amendment.Text", &b.f); err != nil {
		return nil, err
	}
	return &Text{f: b.f}, nil
}

func (e *Text) Endpoint() string {
	return fmt.Sprintf("amendment/%d/%s/%d/text", *e.f.Congress, *e.f.AmendmentType, *e.f.AmendmentNumber)
}

func (e *Text) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
