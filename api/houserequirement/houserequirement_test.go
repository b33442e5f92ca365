package houserequirement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/houserequirement"
	"github.com/cdg-go/cdg/internal/testutil"
)

func TestList(t *testing.T) {
	t.Parallel()

	e, err := houserequirement.NewListBuilder().
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "house-requirement", "format=xml&offset=10&limit=25")

	e, err = houserequirement.NewListBuilder().Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "house-requirement", "format=json")
}

func TestRequirement(t *testing.T) {
	t.Parallel()

	e, err := houserequirement.NewRequirementBuilder().
		RequirementNumber(8070).
		Format(api.FormatXML).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "house-requirement/8070", "format=xml")

	e, err = houserequirement.NewRequirementBuilder().
		RequirementNumber(8070).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "house-requirement/8070", "format=json")

	_, err = houserequirement.NewRequirementBuilder().Build()
	testutil.AssertMissingField(t, err, "requirementNumber")
}

func TestMatchingCommunications(t *testing.T) {
	t.Parallel()

	e, err := houserequirement.NewMatchingCommunicationsBuilder().
		RequirementNumber(8070).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "house-requirement/8070/matching-communications", "format=xml&offset=10&limit=25")

	e, err = houserequirement.NewMatchingCommunicationsBuilder().
		RequirementNumber(8070).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "house-requirement/8070/matching-communications", "format=json")

	_, err = houserequirement.NewMatchingCommunicationsBuilder().Build()
	testutil.AssertMissingField(t, err, "requirementNumber")
}
