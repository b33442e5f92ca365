package crsreport

import "github.com/cdg-go/cdg/api"

type listFields struct {
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}

type reportFields struct {
	ReportNumber *string    `param:"reportNumber" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
}
