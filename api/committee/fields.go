package committee

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

type chamberListFields struct {
	Chamber      *api.Chamber `param:"chamber" validate:"required,enum"`
	Format       api.Format   `param:"format" validate:"enum"`
	Offset       *int         `param:"offset"`
	Limit        *int         `param:"limit"`
	FromDateTime *time.Time   `param:"fromDateTime"`
	ToDateTime   *time.Time   `param:"toDateTime"`
}

type congressListFields struct {
	Congress     *int       `param:"congress" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
	FromDateTime *time.Time `param:"fromDateTime"`
	ToDateTime   *time.Time `param:"toDateTime"`
}

type congressChamberListFields struct {
	Congress     *int         `param:"congress" validate:"required"`
	Chamber      *api.Chamber `param:"chamber" validate:"required,enum"`
	Format       api.Format   `param:"format" validate:"enum"`
	Offset       *int         `param:"offset"`
	Limit        *int         `param:"limit"`
	FromDateTime *time.Time   `param:"fromDateTime"`
	ToDateTime   *time.Time   `param:"toDateTime"`
}

type committeeFields struct {
	Chamber       *api.Chamber `param:"chamber" validate:"required,enum"`
	CommitteeCode *string      `param:"committeeCode" validate:"required"`
	Format        api.Format   `param:"format" validate:"enum"`
}

type itemWindowFields struct {
	Chamber       *api.Chamber `param:"chamber" validate:"required,enum"`
	CommitteeCode *string      `param:"committeeCode" validate:"required"`
	Format        api.Format   `param:"format" validate:"enum"`
	Offset        *int         `param:"offset"`
	Limit         *int         `param:"limit"`
	FromDateTime  *time.Time   `param:"fromDateTime"`
	ToDateTime    *time.Time   `param:"toDateTime"`
}

type itemPageFields struct {
	Chamber       *api.Chamber `param:"chamber" validate:"required,enum"`
	CommitteeCode *string      `param:"committeeCode" validate:"required"`
	Format        api.Format   `param:"format" validate:"enum"`
	Offset        *int         `param:"offset"`
	Limit         *int         `param:"limit"`
}
