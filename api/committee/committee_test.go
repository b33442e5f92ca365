package committee_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/committee"
	"github.com/cdg-go/cdg/internal/testutil"
)

var (
	from = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2022, time.December, 31, 23, 59, 59, 0, time.UTC)
)

func TestList(t *testing.T) {
	t.Parallel()

	e, err := committee.NewListBuilder().
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z")

	e, err = committee.NewListBuilder().Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee", "format=json")
}

func TestByChamber(t *testing.T) {
	t.Parallel()

	e, err := committee.NewByChamberBuilder().
		Chamber(api.ChamberHouse).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z")

	e, err = committee.NewByChamberBuilder().
		Chamber(api.ChamberHouse).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house", "format=json")

	_, err = committee.NewByChamberBuilder().Build()
	testutil.AssertMissingField(t, err, "chamber")
}

func TestByCongress(t *testing.T) {
	t.Parallel()

	e, err := committee.NewByCongressBuilder().
		Congress(117).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/117", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z")

	e, err = committee.NewByCongressBuilder().
		Congress(117).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/117", "format=json")

	_, err = committee.NewByCongressBuilder().Build()
	testutil.AssertMissingField(t, err, "congress")
}

func TestByCongressChamber(t *testing.T) {
	t.Parallel()

	e, err := committee.NewByCongressChamberBuilder().
		Congress(117).
		Chamber(api.ChamberHouse).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/117/house", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z")

	e, err = committee.NewByCongressChamberBuilder().
		Congress(117).
		Chamber(api.ChamberHouse).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/117/house", "format=json")

	_, err = committee.NewByCongressChamberBuilder().
		Chamber(api.ChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "congress")

	_, err = committee.NewByCongressChamberBuilder().
		Congress(117).
		Build()
	testutil.AssertMissingField(t, err, "chamber")
}

func TestCommittee(t *testing.T) {
	t.Parallel()

	e, err := committee.NewCommitteeBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Format(api.FormatXML).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00", "format=xml")

	e, err = committee.NewCommitteeBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00", "format=json")

	_, err = committee.NewCommitteeBuilder().
		CommitteeCode("hspw00").
		Build()
	testutil.AssertMissingField(t, err, "chamber")

	_, err = committee.NewCommitteeBuilder().
		Chamber(api.ChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "committeeCode")
}

func TestBills(t *testing.T) {
	t.Parallel()

	e, err := committee.NewBillsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/bills", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z")

	e, err = committee.NewBillsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/bills", "format=json")

	_, err = committee.NewBillsBuilder().
		CommitteeCode("hspw00").
		Build()
	testutil.AssertMissingField(t, err, "chamber")

	_, err = committee.NewBillsBuilder().
		Chamber(api.ChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "committeeCode")
}

func TestReports(t *testing.T) {
	t.Parallel()

	e, err := committee.NewReportsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		FromDateTime(from).
		ToDateTime(to).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/reports", "format=xml&offset=10&limit=25&fromDateTime=2022-01-01T00%3A00%3A00Z&toDateTime=2022-12-31T23%3A59%3A59Z")

	e, err = committee.NewReportsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/reports", "format=json")

	_, err = committee.NewReportsBuilder().
		CommitteeCode("hspw00").
		Build()
	testutil.AssertMissingField(t, err, "chamber")

	_, err = committee.NewReportsBuilder().
		Chamber(api.ChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "committeeCode")
}

func TestNominations(t *testing.T) {
	t.Parallel()

	e, err := committee.NewNominationsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/nominations", "format=xml&offset=10&limit=25")

	e, err = committee.NewNominationsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/nominations", "format=json")

	_, err = committee.NewNominationsBuilder().
		CommitteeCode("hspw00").
		Build()
	testutil.AssertMissingField(t, err, "chamber")

	_, err = committee.NewNominationsBuilder().
		Chamber(api.ChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "committeeCode")
}

func TestHouseCommunications(t *testing.T) {
	t.Parallel()

	e, err := committee.NewHouseCommunicationsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/house-communication", "format=xml&offset=10&limit=25")

	e, err = committee.NewHouseCommunicationsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/house-communication", "format=json")

	_, err = committee.NewHouseCommunicationsBuilder().
		CommitteeCode("hspw00").
		Build()
	testutil.AssertMissingField(t, err, "chamber")

	_, err = committee.NewHouseCommunicationsBuilder().
		Chamber(api.ChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "committeeCode")
}

func TestSenateCommunications(t *testing.T) {
	t.Parallel()

	e, err := committee.NewSenateCommunicationsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/senate-communication", "format=xml&offset=10&limit=25")

	e, err = committee.NewSenateCommunicationsBuilder().
		Chamber(api.ChamberHouse).
		CommitteeCode("hspw00").
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "committee/house/hspw00/senate-communication", "format=json")

	_, err = committee.NewSenateCommunicationsBuilder().
		CommitteeCode("hspw00").
		Build()
	testutil.AssertMissingField(t, err, "chamber")

	_, err = committee.NewSenateCommunicationsBuilder().
		Chamber(api.ChamberHouse).
		Build()
	testutil.AssertMissingField(t, err, "committeeCode")
}

func TestRejectsUnknownChamber(t *testing.T) {
	t.Parallel()

	_, err := committee.NewByChamberBuilder().
		Chamber(api.Chamber("xx")).
		Build()
	var inv *api.InvalidFieldError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "chamber", inv.Field)
}
