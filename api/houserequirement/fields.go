package houserequirement

import "github.com/cdg-go/cdg/api"

type listFields struct {
	Format api.Format `param:"format" validate:"enum"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}

type requirementFields struct {
	RequirementNumber *int       `param:"requirementNumber" validate:"required"`
	Format            api.Format `param:"format" validate:"enum"`
}

type matchingFields struct {
	RequirementNumber *int       `param:"requirementNumber" validate:"required"`
	Format            api.Format `param:"format" validate:"enum"`
	Offset            *int       `param:"offset"`
	Limit             *int       `param:"limit"`
}
