package summaries

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
	Sort         *api.Sort  `param:"sort" validate:"omitempty,enum"`
}

type congressListFields struct {
	Congress     *int       `param:"congress" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
	FromDateTime *time.Time `param:"fromDateTime"`
	ToDateTime   *time.Time `param:"toDateTime"`
	Sort         *api.Sort  `param:"sort" validate:"omitempty,enum"`
}

type typeListFields struct {
	Congress     *int          `param:"congress" validate:"required"`
	BillType     *api.BillType `param:"billType" validate:"required,enum"`
	Format       api.Format    `param:"format" validate:"enum"`
	Offset       *int          `param:"offset"`
	Limit        *int          `param:"limit"`
	FromDateTime *time.Time    `param:"fromDateTime"`
	ToDateTime   *time.Time    `param:"toDateTime"`
	Sort         *api.Sort     `param:"sort" validate:"omitempty,enum"`
}
