package congress

import "github.com/cdg-go/cdg/api"

type listFields struct {
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}

type congressFields struct {
	Congress *int       `param:"congress" validate:"required"`
	Format   api.Format `param:"format" validate:"enum"`
}

type currentFields struct {
	Format api.Format `param:"format" validate:"enum"`
}
