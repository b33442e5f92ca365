package committeereport

import (
	"time"

	"github.com/cdg-go/cdg/api"
)

type listFields struct {
	Format       api.Format `param:"format" validate:"enum"`
	Conference   *bool      `param:"conference"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
	FromDateTime *time.Time `param:"fromDateTime"`
	ToDateTime   *time.Time `param:"toDateTime"`
}

type congressListFields struct {
	Congress     *int       `param:"congress" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
	Conference   *bool      `param:"conference"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
	FromDateTime *time.Time `param:"fromDateTime"`
	ToDateTime   *time.Time `param:"toDateTime"`
}

type typeListFields struct {
	Congress     *int            `param:"congress" validate:"required"`
	ReportType   *api.ReportType `param:"reportType" validate:"required,enum"`
	Format       api.Format      `param:"format" validate:"enum"`
	Conference   *bool           `param:"conference"`
	Offset       *int            `param:"offset"`
	Limit        *int            `param:"limit"`
	FromDateTime *time.Time      `param:"fromDateTime"`
	ToDateTime   *time.Time      `param:"toDateTime"`
}

type reportFields struct {
	Congress     *int            `param:"congress" validate:"required"`
	ReportType   *api.ReportType `param:"reportType" validate:"required,enum"`
	ReportNumber *int            `param:"reportNumber" validate:"required"`
	Format       api.Format      `param:"format" validate:"enum"`
}

type textFields struct {
	Congress     *int            `param:"congress" validate:"required"`
	ReportType   *api.ReportType `param:"reportType" validate:"required,enum"`
	ReportNumber *int            `param:"reportNumber" validate:"required"`
	Format       api.Format      `param:"format" validate:"enum"`
	Offset       *int            `param:"offset"`
	Limit        *int            `param:"limit"`
}
