package treaty

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

type treatyFields struct {
	Congress     *int       `param:"congress" validate:"required"`
	TreatyNumber *int       `param:"treatyNumber" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
}

type partitionFields struct {
	Congress     *int       `param:"congress" validate:"required"`
	TreatyNumber *int       `param:"treatyNumber" validate:"required"`
	TreatySuffix *string    `param:"treatySuffix" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
}

type itemPageFields struct {
	Congress     *int       `param:"congress" validate:"required"`
	TreatyNumber *int       `param:"treatyNumber" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
}

type partitionPageFields struct {
	Congress     *int       `param:"congress" validate:"required"`
	TreatyNumber *int       `param:"treatyNumber" validate:"required"`
	TreatySuffix *string    `param:"treatySuffix" validate:"required"`
	Format       api.Format `param:"format" validate:"enum"`
	Offset       *int       `param:"offset"`
	Limit        *int       `param:"limit"`
}
