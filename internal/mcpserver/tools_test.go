package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/internal/testutil"
)

func fixtureClient(t *testing.T, name string) *testutil.FakeClient {
	t.Helper()
	body, err := testutil.Fixture(name)
	require.NoError(t, err)
	return testutil.NewFakeClient(http.StatusOK, string(body))
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func requestPath(t *testing.T, fc *testutil.FakeClient) (string, url.Values) {
	t.Helper()
	u, err := url.Parse(fc.LastURL())
	require.NoError(t, err)
	return u.Path, u.Query()
}

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "v1"}, nil)
	RegisterTools(server, testutil.NewFakeClient(http.StatusOK, "{}"))

	assert.NotNil(t, server)
}

func TestGetBill(t *testing.T) {
	fc := fixtureClient(t, "bill.json")

	res, _, err := getBillHandler(fc)(context.Background(), nil, billInput{
		Congress: 117, BillType: "hr", BillNumber: 3076,
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, "Postal Service Reform Act of 2022", got["bill"].(map[string]any)["title"])

	path, q := requestPath(t, fc)
	assert.Equal(t, "/v3/bill/117/hr/3076", path)
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "test-key", q.Get("api_key"))
}

func TestGetBillValidation(t *testing.T) {
	tests := []struct {
		name  string
		input billInput
		want  string
	}{
		{"missing congress", billInput{BillType: "hr", BillNumber: 1}, "required"},
		{"missing number", billInput{Congress: 117, BillType: "hr"}, "required"},
		{"unknown type", billInput{Congress: 117, BillType: "xx", BillNumber: 1}, "xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := testutil.NewFakeClient(http.StatusOK, "{}")
			res, _, err := getBillHandler(fc)(context.Background(), nil, tt.input)
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tt.want)
			assert.Empty(t, fc.Requests())
		})
	}
}

func TestGetBillNotFound(t *testing.T) {
	fc := fixtureClient(t, "error_404.json")
	fc.Status = http.StatusNotFound

	res, _, err := getBillHandler(fc)(context.Background(), nil, billInput{
		Congress: 117, BillType: "hr", BillNumber: 99999,
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "get_bill: not found", resultText(t, res))
}

func TestGetBillServerError(t *testing.T) {
	fc := testutil.NewFakeClient(http.StatusInternalServerError, `{"error":"boom"}`)

	res, _, err := getBillHandler(fc)(context.Background(), nil, billInput{
		Congress: 117, BillType: "hr", BillNumber: 3076,
	})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, api.IsKind(err, api.KindHTTP))
	assert.Contains(t, err.Error(), "get_bill")
}

func TestListBills(t *testing.T) {
	tests := []struct {
		name      string
		input     listBillsInput
		wantPath  string
		wantLimit string
	}{
		{"all", listBillsInput{}, "/v3/bill", ""},
		{"by congress", listBillsInput{Congress: 118, Limit: 5}, "/v3/bill/118", "5"},
		{"by type", listBillsInput{Congress: 118, BillType: "s", Limit: 2, Offset: 4}, "/v3/bill/118/s", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := fixtureClient(t, "bills.json")
			res, _, err := listBillsHandler(fc)(context.Background(), nil, tt.input)
			require.NoError(t, err)
			assert.False(t, res.IsError)

			path, q := requestPath(t, fc)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantLimit, q.Get("limit"))
		})
	}
}

func TestListBillsTypeWithoutCongress(t *testing.T) {
	fc := testutil.NewFakeClient(http.StatusOK, "{}")

	res, _, err := listBillsHandler(fc)(context.Background(), nil, listBillsInput{BillType: "hr"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Empty(t, fc.Requests())
}

func TestListBillActions(t *testing.T) {
	fc := fixtureClient(t, "actions.json")

	res, _, err := listBillActionsHandler(fc)(context.Background(), nil, billPageInput{
		Congress: 117, BillType: "hr", BillNumber: 3076, Limit: 10,
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	path, q := requestPath(t, fc)
	assert.Equal(t, "/v3/bill/117/hr/3076/actions", path)
	assert.Equal(t, "10", q.Get("limit"))
	assert.Empty(t, q.Get("offset"))
}

func TestGetMember(t *testing.T) {
	fc := fixtureClient(t, "member.json")

	res, _, err := getMemberHandler(fc)(context.Background(), nil, memberInput{BioguideID: "L000174"})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	path, _ := requestPath(t, fc)
	assert.Equal(t, "/v3/member/L000174", path)

	res, _, err = getMemberHandler(fc)(context.Background(), nil, memberInput{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGetCongress(t *testing.T) {
	tests := []struct {
		name     string
		input    congressInput
		wantPath string
	}{
		{"current", congressInput{}, "/v3/congress/current"},
		{"numbered", congressInput{Congress: 118}, "/v3/congress/118"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := fixtureClient(t, "congress.json")
			res, _, err := getCongressHandler(fc)(context.Background(), nil, tt.input)
			require.NoError(t, err)
			assert.False(t, res.IsError)
			assert.Contains(t, resultText(t, res), "118th Congress")

			path, _ := requestPath(t, fc)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestGetLaw(t *testing.T) {
	fc := fixtureClient(t, "law.json")

	res, _, err := getLawHandler(fc)(context.Background(), nil, lawInput{Congress: 117, LawNumber: 108})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	path, _ := requestPath(t, fc)
	assert.Equal(t, "/v3/law/117/pub/108", path)

	res, _, err = getLawHandler(fc)(context.Background(), nil, lawInput{Congress: 117, LawType: "public", LawNumber: 108})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "public")
}

func jsonFields(v any) []string {
	var names []string
	rt := reflect.TypeOf(v)
	for i := 0; i < rt.NumField(); i++ {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get("json"), ",")
		names = append(names, name)
	}
	return names
}

func TestToolInputsAdvertiseOnlyUsedFields(t *testing.T) {
	assert.ElementsMatch(t, []string{"congress", "bill_type", "bill_number"}, jsonFields(billInput{}))
	assert.ElementsMatch(t,
		[]string{"congress", "bill_type", "bill_number", "limit", "offset"},
		jsonFields(billPageInput{}),
	)
}
