package summaries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/summaries"
	"github.com/cdg-go/cdg/internal/testutil"
)

var (
	from = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2022, time.December, 31, 23, 59, 59, 0, time.UTC)
)

func TestList(t *testing.T) {
	t.Parallel()

	e, err := summaries.NewListBuilder().
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Sort(api.SortDesc).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "summaries", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z&sort=desc")

	e, err = summaries.NewListBuilder().Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "summaries", "format=json")
}

func TestByCongress(t *testing.T) {
	t.Parallel()

	e, err := summaries.NewByCongressBuilder().
		Congress(117).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Sort(api.SortDesc).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "summaries/117", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z&sort=desc")

	e, err = summaries.NewByCongressBuilder().
		Congress(117).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "summaries/117", "format=json")

	_, err = summaries.NewByCongressBuilder().Build()
	testutil.AssertMissingField(t, err, "congress")
}

func TestByType(t *testing.T) {
	t.Parallel()

	e, err := summaries.NewByTypeBuilder().
		Congress(117).
		BillType(api.BillTypeHR).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Sort(api.SortDesc).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "summaries/117/hr", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z&sort=desc")

	e, err = summaries.NewByTypeBuilder().
		Congress(117).
		BillType(api.BillTypeHR).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "summaries/117/hr", "format=json")

	_, err = summaries.NewByTypeBuilder().
		BillType(api.BillTypeHR).
		Build()
	testutil.AssertMissingField(t, err, "congress")

	_, err = summaries.NewByTypeBuilder().
		Congress(117).
		Build()
	testutil.AssertMissingField(t, err, "billType")
}

func TestRejectsUnknownBillType(t *testing.T) {
	t.Parallel()

	_, err := summaries.NewByTypeBuilder().
		Congress(117).
		BillType(api.BillType("xx")).
		Build()
	var inv *api.InvalidFieldError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "billType", inv.Field)
}

func TestRejectsUnknownSort(t *testing.T) {
	t.Parallel()

	_, err := summaries.NewListBuilder().
		Sort(api.Sort("sideways")).
		Build()
	var inv *api.InvalidFieldError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "sort", inv.Field)
}
