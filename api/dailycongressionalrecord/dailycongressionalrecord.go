// Package dailycongressionalrecord holds the daily Congressional Record
// endpoints.
package dailycongressionalrecord

import (
	"fmt"

	"github.com/cdg-go/cdg/api"
)

// List lists daily Congressional Record issues.
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
	if err := api.CheckFields("dailycongressionalrecord.List", &b.f); err != nil {
		return nil, err
	}
	return &List{f: b.f}, nil
}

func (e *List) Endpoint() string {
	return "daily-congressional-record"
}

func (e *List) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// ByVolume is GET daily-congressional-record/{volumeNumber}.
type ByVolume struct {
	api.GetEndpoint
	f volumeFields
}

// ByVolumeBuilder builds ByVolume.
type ByVolumeBuilder struct {
	f volumeFields
}

func NewByVolumeBuilder() *ByVolumeBuilder { return new(ByVolumeBuilder) }

func (b *ByVolumeBuilder) VolumeNumber(volumeNumber int) *ByVolumeBuilder {
	b.f.VolumeNumber = &volumeNumber
	return b
}

func (b *ByVolumeBuilder) Format(format api.Format) *ByVolumeBuilder {
	b.f.Format = format
	return b
}

func (b *ByVolumeBuilder) Offset(offset int) *ByVolumeBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ByVolumeBuilder) Limit(limit int) *ByVolumeBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ByVolumeBuilder) Build() (*ByVolume, error) {
	if err := api.CheckFields("dailycongressionalrecord.ByVolume", &b.f); err != nil {
		return nil, err
	}
	return &ByVolume{f: b.f}, nil
}

func (e *ByVolume) Endpoint() string {
	return fmt.Sprintf("daily-congressional-record/%d", *e.f.VolumeNumber)
}

func (e *ByVolume) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Issue is GET daily-congressional-record/{volumeNumber}/{issueNumber}.
type Issue struct {
	api.GetEndpoint
	f issueFields
}

// IssueBuilder builds Issue.
type IssueBuilder struct {
	f issueFields
}

func NewIssueBuilder() *IssueBuilder { return new(IssueBuilder) }

func (b *IssueBuilder) VolumeNumber(volumeNumber int) *IssueBuilder {
	b.f.VolumeNumber = &volumeNumber
	return b
}

func (b *IssueBuilder) IssueNumber(issueNumber int) *IssueBuilder {
	b.f.IssueNumber = &issueNumber
	return b
}

func (b *IssueBuilder) Format(format api.Format) *IssueBuilder {
	b.f.Format = format
	return b
}

func (b *IssueBuilder) Offset(offset int) *IssueBuilder {
	b.f.Offset = &offset
	return b
}

func (b *IssueBuilder) Limit(limit int) *IssueBuilder {
	b.f.Limit = &limit
	return b
}

func (b *IssueBuilder) Build() (*Issue, error) {
	if err := api.CheckFields("dailycongressionalrecord.Issue", &b.f); err != nil {
		return nil, err
	}
	return &Issue{f: b.f}, nil
}

func (e *Issue) Endpoint() string {
	return fmt.Sprintf("daily-congressional-record/%d/%d", *e.f.VolumeNumber, *e.f.IssueNumber)
}

func (e *Issue) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}

// Articles lists the articles of an issue.
type Articles struct {
	api.GetEndpoint
	f issueFields
}

// ArticlesBuilder builds Articles.
type ArticlesBuilder struct {
	f issueFields
}

func NewArticlesBuilder() *ArticlesBuilder { return new(ArticlesBuilder) }

func (b *ArticlesBuilder) VolumeNumber(volumeNumber int) *ArticlesBuilder {
	b.f.VolumeNumber = &volumeNumber
	return b
}

func (b *ArticlesBuilder) IssueNumber(issueNumber int) *ArticlesBuilder {
	b.f.IssueNumber = &issueNumber
	return b
}

func (b *ArticlesBuilder) Format(format api.Format) *ArticlesBuilder {
	b.f.Format = format
	return b
}

func (b *ArticlesBuilder) Offset(offset int) *ArticlesBuilder {
	b.f.Offset = &offset
	return b
}

func (b *ArticlesBuilder) Limit(limit int) *ArticlesBuilder {
	b.f.Limit = &limit
	return b
}

func (b *ArticlesBuilder) Build() (*Articles, error) {
	if err := api.CheckFields("dailycongressionalrecord.Articles", &b.f); err != nil {
		return nil, err
	}
	return &Articles{f: b.f}, nil
}

func (e *Articles) Endpoint() string {
	return fmt.Sprintf("daily-congressional-record/%d/%d/articles", *e.f.VolumeNumber, *e.f.IssueNumber)
}

func (e *Articles) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", e.f.Format)
	p.PushOpt("offset", e.f.Offset)
	p.PushOpt("limit", e.f.Limit)
	return p
}
