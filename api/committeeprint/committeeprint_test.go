package committeeprint_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/committeeprint"
	"github.com/cdg-go/cdg/internal/testutil"
)

var (
	from = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2022, time.December, 31, 23, 59, 59, 0, time.UTC)
)

func TestList(t *testing.T) {
	t.Parallel()

	e, err := committeeprint.NewListBuilder().
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z")

	e, err = committeeprint.NewListBuilder().Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print", "format=json")
}

func TestByCongress(t *testing.T) {
	t.Parallel()

	e, err := committeeprint.NewByCongressBuilder().
		Congress(117).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print/117", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z")

	e, err = committeeprint.NewByCongressBuilder().
		Congress(117).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print/117", "format=json")

	_, err = committeeprint.NewByCongressBuilder().Build()
	testutil.AssertMissingField(t, err, "congress")
}

func TestByChamber(t *testing.T) {
	t.Parallel()

	e, err := committeeprint.NewByChamberBuilder().
		Congress(117).
		Chamber(api.CommitteeChamberHouse).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print/117/house", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z")

	e, err = committeeprint.NewByChamberBuilder().
		Congress(117).
		Chamber(api.CommitteeChamberHouse).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print/117/house", "format=json")

	_, err = committeeprint.NewByChamberBuilder().
		Chamber(api.CommitteeChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "congress")

	_, err = committeeprint.NewByChamberBuilder().
		Congress(117).
		Build()
	testutil.AssertMissingField(t, err, "chamber")
}

func TestPrint(t *testing.T) {
	t.Parallel()

	e, err := committeeprint.NewPrintBuilder().
		Congress(117).
		Chamber(api.CommitteeChamberHouse).
		JacketNumber(48144).
		Format(api.FormatXML).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print/117/house/48144", "format=xml")

	e, err = committeeprint.NewPrintBuilder().
		Congress(117).
		Chamber(api.CommitteeChamberHouse).
		JacketNumber(48144).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print/117/house/48144", "format=json")

	_, err = committeeprint.NewPrintBuilder().
		Chamber(api.CommitteeChamberHouse).
		JacketNumber(48144).
		Build()
	testutil.AssertMissingField(t, err, "congress")

	_, err = committeeprint.NewPrintBuilder().
		Congress(117).
		JacketNumber(48144).
		Build()
	testutil.AssertMissingField(t, err, "chamber")

	_, err = committeeprint.NewPrintBuilder().
		Congress(117).
		Chamber(api.CommitteeChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "jacketNumber")
}

func TestText(t *testing.T) {
	t.Parallel()

	e, err := committeeprint.NewTextBuilder().
		Congress(117).
		Chamber(api.CommitteeChamberHouse).
		JacketNumber(48144).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print/117/house/48144/text", "format=xml&offset=10&limit=25")

	e, err = committeeprint.NewTextBuilder().
		Congress(117).
		Chamber(api.CommitteeChamberHouse).
		JacketNumber(48144).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee-print/117/house/48144/text", "format=json")

	_, err = committeeprint.NewTextBuilder().
		Chamber(api.CommitteeChamberHouse).
		JacketNumber(48144).
		Build()
	testutil.AssertMissingField(t, err, "congress")

	_, err = committeeprint.NewTextBuilder().
		Congress(117).
		JacketNumber(48144).
		Build()
	testutil.AssertMissingField(t, err, "chamber")

	_, err = committeeprint.NewTextBuilder().
		Congress(117).
		Chamber(api.CommitteeChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "jacketNumber")
}

func TestRejectsUnknownChamber(t *testing.T) {
	t.Parallel()

	_, err := committeeprint.NewByChamberBuilder().
		Congress(117).
		Chamber(api.CommitteeChamber("xx")).
		Build()
	var inv *api.InvalidFieldError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "chamber", inv.Field)
}
