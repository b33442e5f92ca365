package senatecommunication

import "github.com/cdg-go/cdg/api"

type listFields struct {
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}

type congressListFields struct {
	Congress *int       `param:"congress" validate:"required"`
	Format   api.Format `param:"format" validate:"enum"`
	Offset   *int       `param:"offset"`
	Limit    *int       `param:"limit"`
}

type typeListFields struct {
	Congress          *int                         `param:"congress" validate:"required"`
	CommunicationType *api.SenateCommunicationType `param:"communicationType" validate:"required,enum"`
	Format            api.Format                   `param:"format" validate:"enum"`
	Offset            *int                         `param:"offset"`
	Limit             *int                         `param:"limit"`
}

type communicationFields struct {
	Congress            *int                         `param:"congress" validate:"required"`
	CommunicationType   *api.SenateCommunicationType `param:"communicationType" validate:"required,enum"`
	CommunicationNumber *int                         `param:"communicationNumber" validate:"required"`
	Format              api.Format                   `param:"format" validate:"enum"`
}
