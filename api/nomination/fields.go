package nomination

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

type nominationFields struct {
	Congress         *int       `param:"congress" validate:"required"`
	NominationNumber *int       `param:"nominationNumber" validate:"required"`
	Format           api.Format `param:"format" validate:"enum"`
}

type nomineesFields struct {
	Congress         *int       `param:"congress" validate:"required"`
	NominationNumber *int       `param:"nominationNumber" validate:"required"`
	Ordinal          *int       `param:"ordinal" validate:"required"`
	Format           api.Format `param:"format" validate:"enum"`
	Offset           *int       `param:"offset"`
	Limit            *int       `param:"limit"`
}

type itemPageFields struct {
	Congress         *int       `param:"congress" validate:"required"`
	NominationNumber *int       `param:"nominationNumber" validate:"required"`
	Format           api.Format `param:"format" validate:"enum"`
	Offset           *int       `param:"offset"`
	Limit            *int       `param:"limit"`
}
