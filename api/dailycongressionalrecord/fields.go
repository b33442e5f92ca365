package dailycongressionalrecord

import "github.com/cdg-go/cdg/api"

type listFields struct {
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}

type volumeFields struct {
	VolumeNumber *int       `param:"volumeNumber" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
}

type issueFields struct {
	VolumeNumber *int       `param:"volumeNumber" validate:"required"`
	IssueNumber  *int       `param:"issueNumber" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
}
