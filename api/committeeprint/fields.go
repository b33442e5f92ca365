package committeeprint

import (
	"time"

	"github.com/cdg-go/cdg/api"
)

type listFields struct {
	Format       api.Format `param:"format" validate:"enum"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
	FromDateTime *time.Time `param:"fromDateTime"`
	ToDateTime   *time.Time `param:"toDateTime"`
}

type congressListFields struct {
	Congress     *int       `param:"congress" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
	FromDateTime *time.Time `param:"fromDateTime"`
	ToDateTime   *time.Time `param:"toDateTime"`
}

type chamberListFields struct {
	Congress     *int                  `param:"congress" validate:"required"`
	Chamber      *api.CommitteeChamber `param:"chamber" validate:"required,enum"`
	Format       api.Format            `param:"format" validate:"enum"`
	Offset       *int                  `param:"offset"`
	Limit        *int                  `param:"limit"`
	FromDateTime *time.Time            `param:"fromDateTime"`
	ToDateTime   *time.Time            `param:"toDateTime"`
}

type printFields struct {
	Congress     *int                  `param:"congress" validate:"required"`
	Chamber      *api.CommitteeChamber `param:"chamber" validate:"required,enum"`
	JacketNumber *int                  `param:"jacketNumber" validate:"required"`
	Format       api.Format            `param:"format" validate:"enum"`
}

type textFields struct {
	Congress     *int                  `param:"congress" validate:"required"`
	Chamber      *api.CommitteeChamber `param:"chamber" validate:"required,enum"`
	JacketNumber *int                  `param:"jacketNumber" validate:"required"`
	Format       api.Format            `param:"format" validate:"enum"`
	Offset       *int                  `param:"offset"`
	Limit        *int                  `param:"limit"`
}
