package member

import (
	"time"

	"github.com/cdg-go/cdg/api"
)

type listFields struct {
	Format        api.Format `param:"format" validate:"enum"`
	Offset        *int       `param:"offset"`
	Limit         *int       `param:"limit"`
	FromDateTime  *time.Time `param:"fromDateTime"`
	ToDateTime    *time.Time `param:"toDateTime"`
	CurrentMember *bool      `param:"currentMember"`
}

type stateFields struct {
	StateCode     *api.StateCode `param:"stateCode" validate:"required,enum"`
	Format        api.Format     `param:"format" validate:"enum"`
	CurrentMember *bool          `param:"currentMember"`
}

type districtFields struct {
	StateCode     *api.StateCode `param:"stateCode" validate:"required,enum"`
	District      *int           `param:"district" validate:"required"`
	Format        api.Format     `param:"format" validate:"enum"`
	CurrentMember *bool          `param:"currentMember"`
}

type congressFields struct {
	Congress      *int       `param:"congress" validate:"required"`
	Format        api.Format `param:"format" validate:"enum"`
	Offset        *int       `param:"offset"`
	Limit         *int       `param:"limit"`
	CurrentMember *bool      `param:"currentMember"`
}

type congressDistrictFields struct {
	Congress      *int           `param:"congress" validate:"required"`
	StateCode     *api.StateCode `param:"stateCode" validate:"required,enum"`
	District      *int           `param:"district" validate:"required"`
	Format        api.Format     `param:"format" validate:"enum"`
	CurrentMember *bool          `param:"currentMember"`
}

type memberFields struct {
	BioguideID *string    `param:"bioguideId" validate:"required"`
	Format     api.Format `param:"format" validate:"enum"`
}

type legislationFields struct {
	BioguideID *string    `param:"bioguideId" validate:"required"`
	Format     api.Format `param:"format" validate:"enum"`
	Offset     *int       `param:"offset"`
	Limit      *int       `param:"limit"`
}
