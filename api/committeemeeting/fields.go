package committeemeeting

import "github.com/cdg-go/cdg/api"

type listFields struct {
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}

type congressListFields struct {
	Congress *int       `param:"congress" validate:"required"`
	Format   api.Format `param:"format" validate:"enum"`
	Offset   *int       `param:"offset"`
	Limit    *int       `param:"limit"`
}

type chamberListFields struct {
	Congress *int         `param:"congress" validate:"required"`
	Chamber  *api.Chamber `param:"chamber" validate:"required,enum"`
	Format   api.Format   `param:"format" validate:"enum"`
	Offset   *int         `param:"offset"`
	Limit    *int         `param:"limit"`
}

type meetingFields struct {
	Congress *int         `param:"congress" validate:"required"`
	Chamber  *api.Chamber `param:"chamber" validate:"required,enum"`
	EventID  *string      `param:"eventId" validate:"required"`
	Format   api.Format   `param:"format" validate:"enum"`
}
