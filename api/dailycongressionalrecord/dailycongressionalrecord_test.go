package dailycongressionalrecord_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/dailycongressionalrecord"
	"github.com/cdg-go/cdg/internal/testutil"
)

func TestList(t *testing.T) {
	t.Parallel()

	e, err := dailycongressionalrecord.NewListBuilder().
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "daily-congressional-record", "format=xml&offset=10&limit=25")

	e, err = dailycongressionalrecord.NewListBuilder().Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "daily-congressional-record", "format=json")
}

func TestByVolume(t *testing.T) {
	t.Parallel()

	e, err := dailycongressionalrecord.NewByVolumeBuilder().
		VolumeNumber(166).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "daily-congressional-record/166", "format=xml&offset=10&limit=25")

	e, err = dailycongressionalrecord.NewByVolumeBuilder().
		VolumeNumber(166).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "daily-congressional-record/166", "format=json")

	_, err = dailycongressionalrecord.NewByVolumeBuilder().Build()
	testutil.AssertMissingField(t, err, "volumeNumber")
}

func TestIssue(t *testing.T) {
	t.Parallel()

	e, err := dailycongressionalrecord.NewIssueBuilder().
		VolumeNumber(166).
		IssueNumber(153).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "daily-congressional-record/166/153", "format=xml&offset=10&limit=25")

	e, err = dailycongressionalrecord.NewIssueBuilder().
		VolumeNumber(166).
		IssueNumber(153).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "daily-congressional-record/166/153", "format=json")

	_, err = dailycongressionalrecord.NewIssueBuilder().
		IssueNumber(153).
		Build()
	testutil.AssertMissingField(t, err, "volumeNumber")

	_, err = dailycongressionalrecord.NewIssueBuilder().
		VolumeNumber(166).
		Build()
	testutil.AssertMissingField(t, err, "issueNumber")
}

func TestArticles(t *testing.T) {
	t.Parallel()

	e, err := dailycongressionalrecord.NewArticlesBuilder().
		VolumeNumber(166).
		IssueNumber(153).
		Format(api.FormatXML).
		Offset(10).
		Limit(25).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "daily-congressional-record/166/153/articles", "format=xml&offset=10&limit=25")

	e, err = dailycongressionalrecord.NewArticlesBuilder().
		VolumeNumber(166).
		IssueNumber(153).
		Build()
	require.NoError(t, err)
	testutil.AssertEndpoint(t, e, "daily-congressional-record/166/153/articles", "format=json")

	_, err = dailycongressionalrecord.NewArticlesBuilder().
		IssueNumber(153).
		Build()
	testutil.AssertMissingField(t, err, "volumeNumber")

	_, err = dailycongressionalrecord.NewArticlesBuilder().
		VolumeNumber(166).
		Build()
	testutil.AssertMissingField(t, err, "issueNumber")
}
