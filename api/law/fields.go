package law

import "github.com/cdg-go/cdg/api"

type congressFields struct {
	Congress *int       `param:"congress" validate:"required"`
	Format   api.Format `param:"format" validate:"enum"`
	Offset   *int       `param:"offset"`
	Limit    *int       `param:"limit"`
}

type typeFields struct {
	Congress *int         `param:"congress" validate:"required"`
	LawType  *api.LawType `param:"lawType" validate:"required,enum"`
	Format   api.Format   `param:"format" validate:"enum"`
	Offset   *int         `param:"offset"`
	Limit    *int         `param:"limit"`
}

type lawFields struct {
	Congress  *int         `param:"congress" validate:"required"`
	LawType   *api.LawType `param:"lawType" validate:"required,enum"`
	LawNumber *int         `param:"lawNumber" validate:"required"`
	Format    api.Format   `param:"format" validate:"enum"`
}
