package crsreport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/crsreport"
	"github.com/cdg-go/cdg/internal/testutil"
)

func TestList(t *testing.T) {
	t.Parallel()

	e, err := crsreport.NewListBuilder().
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "crsreport", "format=xml&offset=10&limit=25")

	e, err = crsreport.NewListBuilder().Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "crsreport", "format=json")
}

func TestReport(t *testing.T) {
	t.Parallel()

	e, err := crsreport.NewReportBuilder().
		ReportNumber("R47175").
		Format(api.FormatXML).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "crsreport/R47175", "format=xml")

	e, err = crsreport.NewReportBuilder().
		ReportNumber("R47175").
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "crsreport/R47175", "format=json")

	_, err = crsreport.NewReportBuilder().Build()
	testutil.AssertMissingField(t, err, "reportNumber")
}
