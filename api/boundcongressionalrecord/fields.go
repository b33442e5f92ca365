package boundcongressionalrecord

import "github.com/cdg-go/cdg/api"

type listFields struct {
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}

type yearFields struct {
	Year   *int       `param:"year" validate:"required"`
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}

type monthFields struct {
	Year   *int       `param:"year" validate:"required"`
	Month  *int       `param:"month" validate:"required"`
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}

type dayFields struct {
	Year   *int       `param:"year" validate:"required"`
	Month  *int       `param:"month" validate:"required"`
	Day    *int       `param:"day" validate:"required"`
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}
