package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/internal/testutil"
)

type billEndpoint struct {
	api.GetEndpoint
	path  string
	limit *int
}

func (e billEndpoint) Endpoint() string { return e.path }

func (e billEndpoint) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", api.FormatJSON)
	p.PushOpt("limit", e.limit)
	return p
}

type billResponse struct {
	Bill struct {
		Congress int    `json:"congress" validate:"required"`
		Number   string `json:"number" validate:"required"`
		Title    string `json:"title"`
	} `json:"bill"`
}

func TestQuerySuccess(t *testing.T) {
	t.Parallel()
	body, err := testutil.Fixture("bill.json")
	require.NoError(t, err)
	c := testutil.NewFakeClient(http.StatusOK, string(body))

	got, err := api.Query[billResponse](context.Background(), billEndpoint{path: "bill/117/hr/3076"}, c)
	require.NoError(t, err)
	assert.Equal(t, 117, got.Bill.Congress)
	assert.Equal(t, "3076", got.Bill.Number)
	assert.Equal(t, "Postal Service Reform Act of 2022", got.Bill.Title)

	reqs := c.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "https://api.example.test/v3/bill/117/hr/3076?format=json&api_key=test-key", reqs[0].URL.String())
}

func TestQueryGenericValue(t *testing.T) {
	t.Parallel()
	c := testutil.NewFakeClient(http.StatusOK, `{"congress":{"number":118,"name":"118th Congress"}}`)

	got, err := api.Query[map[string]any](context.Background(), billEndpoint{path: "congress/current"}, c)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"congress": map[string]any{"number": float64(118), "name": "118th Congress"},
	}, got)
}

func TestQueryAuthIsLastParameter(t *testing.T) {
	t.Parallel()
	limit := 5
	c := testutil.NewFakeClient(http.StatusOK, `{}`)

	_, err := api.Query[map[string]any](context.Background(), billEndpoint{path: "bill", limit: &limit}, c)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test/v3/bill?format=json&limit=5&api_key=test-key", c.LastURL())
}

func TestQueryHTTPErrorWithJSONBody(t *testing.T) {
	t.Parallel()
	body, err := testutil.Fixture("error_404.json")
	require.NoError(t, err)
	c := testutil.NewFakeClient(http.StatusNotFound, string(body))

	_, err = api.Query[billResponse](context.Background(), billEndpoint{path: "bill/117/hr/0"}, c)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindHTTP))
	assert.False(t, api.IsKind(err, api.KindDataType))
	status, ok := api.HTTPStatus(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestQueryUnparseableBodyIsHTTPErrorEvenOnSuccess(t *testing.T) {
	t.Parallel()
	c := testutil.NewFakeClient(http.StatusOK, `<api-root><bill/></api-root>`)

	_, err := api.Query[billResponse](context.Background(), billEndpoint{path: "bill"}, c)
	require.Error(t, err)
	status, ok := api.HTTPStatus(err)
	require.True(t, ok, "want http error, got %v", err)
	assert.Equal(t, http.StatusOK, status)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Nil(t, apiErr.Err)
}

func TestQueryUnparseableBodyMasksStatus(t *testing.T) {
	t.Parallel()
	c := testutil.NewFakeClient(http.StatusBadGateway, `upstream unavailable`)

	_, err := api.Query[billResponse](context.Background(), billEndpoint{path: "bill"}, c)
	status, ok := api.HTTPStatus(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, status)
}

func TestQueryMissingRequiredFieldIsDataTypeError(t *testing.T) {
	t.Parallel()
	c := testutil.NewFakeClient(http.StatusOK, `{"bill":{"congress":117,"title":"no number"}}`)

	_, err := api.Query[billResponse](context.Background(), billEndpoint{path: "bill/117/hr/3076"}, c)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindDataType), "got %v", err)
	_, ok := api.HTTPStatus(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "number")
}

func TestQueryWrongTypeIsDataTypeError(t *testing.T) {
	t.Parallel()
	c := testutil.NewFakeClient(http.StatusOK, `{"bill":{"congress":"one hundred seventeen","number":"1"}}`)

	_, err := api.Query[billResponse](context.Background(), billEndpoint{path: "bill/117/hr/1"}, c)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindDataType))

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.NotNil(t, apiErr.Err)
}

func TestQueryValidatesSliceElements(t *testing.T) {
	t.Parallel()
	type action struct {
		ActionDate string `json:"actionDate" validate:"required"`
	}
	c := testutil.NewFakeClient(http.StatusOK, `[{"actionDate":"2022-04-06"},{"text":"undated"}]`)

	_, err := api.Query[[]action](context.Background(), billEndpoint{path: "bill/117/hr/3076/actions"}, c)
	assert.True(t, api.IsKind(err, api.KindDataType), "got %v", err)
	assert.Contains(t, err.Error(), "[1]")
}

func TestQueryTransportError(t *testing.T) {
	t.Parallel()
	cause := errors.New("dial tcp: connection refused")
	c := testutil.NewFakeClient(http.StatusOK, `{}`)
	c.Err = cause

	_, err := api.Query[map[string]any](context.Background(), billEndpoint{path: "bill"}, c)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindClient))
	assert.ErrorIs(t, err, cause)
}

func TestQueryURLParseError(t *testing.T) {
	t.Parallel()
	c := testutil.NewFakeClient(http.StatusOK, `{}`)

	_, err := api.Query[map[string]any](context.Background(), billEndpoint{path: "bill/%zz"}, c)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindURLParse))

	var urlErr *url.Error
	assert.ErrorAs(t, err, &urlErr)
	assert.Empty(t, c.Requests(), "no request may be sent")
}

type badMethodEndpoint struct{ billEndpoint }

func (badMethodEndpoint) Method() string { return "BAD METHOD" }

func TestQueryRequestBuildError(t *testing.T) {
	t.Parallel()
	c := testutil.NewFakeClient(http.StatusOK, `{}`)

	_, err := api.Query[map[string]any](context.Background(), badMethodEndpoint{billEndpoint{path: "bill"}}, c)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindRequest))
	assert.Empty(t, c.Requests())
}

func TestQueryRawReturnsBodyUntouched(t *testing.T) {
	t.Parallel()
	xml := `<?xml version="1.0"?><api-root><bill><number>3076</number></bill></api-root>`
	c := testutil.NewFakeClient(http.StatusOK, xml)
	c.Header = http.Header{"Content-Type": []string{"application/xml"}}

	resp, err := api.QueryRaw(context.Background(), billEndpoint{path: "bill/117/hr/3076"}, c)
	require.NoError(t, err)
	assert.Equal(t, xml, string(resp.Body))
	assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))
}

func TestQueryRawHTTPError(t *testing.T) {
	t.Parallel()
	c := testutil.NewFakeClient(http.StatusForbidden, `<error>API_KEY_INVALID</error>`)

	resp, err := api.QueryRaw(context.Background(), billEndpoint{path: "bill"}, c)
	assert.Nil(t, resp)
	status, ok := api.HTTPStatus(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestQueryPassesContext(t *testing.T) {
	t.Parallel()
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")
	c := testutil.NewFakeClient(http.StatusOK, `{}`)
	c.Handler = func(req *http.Request) (*api.Response, error) {
		assert.Equal(t, "marker", req.Context().Value(key{}))
		return &api.Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
	}

	_, err := api.Query[map[string]any](ctx, billEndpoint{path: "bill"}, c)
	require.NoError(t, err)
}
