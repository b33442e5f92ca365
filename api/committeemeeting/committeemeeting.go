// Package committeemeeting holds the committee meeting endpoints.
package committeemeeting

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// List lists committee meetings.
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
	if err := api.CheckFields("committeemeeting.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "committee-meeting"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// ByCongress is GET committee-meeting/{congress}.
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
	if err := api.CheckFields("committeemeeting.ByCongress", &b.f); err != nil {
		return nil, err
	}
	return &ByCongress{f: b.f}, nil
}

func (e *ByCongress) Endpoint() string {
	return fmt.Sprintf("committee-meeting/%d", *e.f.Congress)
}

func (e *ByCongress) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// ByChamber is GET committee-meeting/{congress}/{chamber}.
type ByChamber struct {
	api.GetEndpoint
	f chamberListFields
}

// ByChamberBuilder builds ByChamber.
type ByChamberBuilder struct {
	f chamberListFields
}

func NewByChamberBuilder() *ByChamberBuilder { return new(ByChamberBuilder) }

func (b *ByChamberBuilder) Congress(congress int) *ByChamberBuilder {
	b.f.Congress = &congress
	return b
}

func (b *ByChamberBuilder) Chamber(chamber api.Chamber) *ByChamberBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *ByChamberBuilder) Format(format api.Format) *ByChamberBuilder {
	b.f.Format = format
	return b
}

func (b *ByChamberBuilder) Offset(offset int) *ByChamberBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ByChamberBuilder) Limit(limit int) *ByChamberBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ByChamberBuilder) Build() (*ByChamber, error) {
	if err := api.CheckFields("committeemeeting.ByChamber", &b.f); err != nil {
		return nil, err
	}
	return &ByChamber{f: b.f}, nil
}

func (e *ByChamber) Endpoint() string {
	return fmt.Sprintf("committee-meeting/%d/%s", *e.f.Congress, *e.f.Chamber)
}

func (e *ByChamber) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Meeting returns one meeting by event ID.
type Meeting struct {
	api.GetEndpoint
	f meetingFields
}

// MeetingBuilder builds Meeting.
type MeetingBuilder struct {
	f meetingFields
}

func NewMeetingBuilder() *MeetingBuilder { return new(MeetingBuilder) }

func (b *MeetingBuilder) Congress(congress int) *MeetingBuilder {
	b.f.Congress = &congress
	return b
}

func (b *MeetingBuilder) Chamber(chamber api.Chamber) *MeetingBuilder {
	b.f.Chamber = &chamber
	return b
}

func (b *MeetingBuilder) EventID(eventID string) *MeetingBuilder {
	b.f.EventID = &eventID
	return b
}

func (b *MeetingBuilder) Format(format api.Format) *MeetingBuilder {
	b.f.Format = format
	return b
}

func (b *MeetingBuilder) Build() (*Meeting, error) {
	if err := api.CheckFields("committeemeeting.Meeting", &b.f); err != nil {
		return nil, err
	}
	return &Meeting{f: b.f}, nil
}

func (e *Meeting) Endpoint() string {
	return fmt.Sprintf("committee-meeting/%d/%s/%s", *e.f.Congress, *e.f.Chamber, *e.f.EventID)
}

func (e *Meeting) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	return p
}
