package amendment

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
	Congress      *int               `param:"congress" validate:"required"`
	AmendmentType *api.AmendmentType `param:"amendmentType" validate:"required,enum"`
	Format        api.Format         `param:"format" validate:"enum"`
	Offset        *int               `param:"offset"`
	Limit         *int               `param:"limit"`
	FromDateTime  *time.Time         `param:"fromDateTime"`
	ToDateTime    *time.Time         `param:"toDateTime"`
	Sort          *api.Sort          `param:"sort" validate:"omitempty,enum"`
}

type amendmentFields struct {
	Congress        *int               `param:"congress" validate:"required"`
	AmendmentType   *api.AmendmentType `param:"amendmentType" validate:"required,enum"`
	AmendmentNumber *int               `param:"amendmentNumber" validate:"required"`
	Format          api.Format         `param:"format" validate:"enum"`
}

type itemPageFields struct {
	Congress        *int               `param:"congress" validate:"required"`
	AmendmentType   *api.AmendmentType `param:"amendmentType" validate:"required,enum"`
	AmendmentNumber *int               `param:"amendmentNumber" validate:"required"`
	Format          api.Format         `param:"format" validate:"enum"`
	Offset          *int               `param:"offset"`
	Limit           *int               `param:"limit"`
}
