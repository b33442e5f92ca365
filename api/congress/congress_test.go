package congress_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/congress"
	"github.com/cdg-go/cdg/internal/testutil"
)

func TestList(t *testing.T) {
	t.Parallel()

	e, err := congress.NewListBuilder().
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "congress", "format=xml&offset=10&limit=25")

	e, err = congress.NewListBuilder().Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "congress", "format=json")
}

func TestCongress(t *testing.T) {
	t.Parallel()

	e, err := congress.NewCongressBuilder().
		Congress(117).
		Format(api.FormatXML).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "congress/117", "format=xml")

	e, err = congress.NewCongressBuilder().
		Congress(117).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "congress/117", "format=json")

	_, err = congress.NewCongressBuilder().Build()
	testutil.AssertMissingField(t, err, "congress")
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	e, err := congress.NewCurrentBuilder().
		Format(api.FormatXML).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "congress/current", "format=xml")

	e, err = congress.NewCurrentBuilder().Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "congress/current", "format=json")
}
