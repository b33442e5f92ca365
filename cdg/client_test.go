package cdg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/sync/errgroup"

	"github.com/cdg-go/cdg/api"
)

const testKey = "DEMO-KEY-123"

type testEndpoint struct {
	api.GetEndpoint
	path   string
	offset *int
}

func (e testEndpoint) Endpoint() string { return e.path }

func (e testEndpoint) Parameters() *api.QueryParams {
	p := new(api.QueryParams)
	p.Push("format", api.FormatJSON)
	p.PushOpt("offset", e.offset)
	return p
}

type echo struct {
	Path     string `json:"path" validate:"required"`
	RawQuery string `json:"rawQuery"`
}

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(echo{Path: r.URL.Path, RawQuery: r.URL.RawQuery})
	}))
	t.Cleanup(srv.Close)
	return srv
}

type recorded struct {
	method, endpoint string
	status           int
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recorded
}

func (f *fakeRecorder) RecordRequest(_ context.Context, method, endpoint string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recorded{method, endpoint, status})
}

func TestNewDefaults(t *testing.T) {
	c, err := New(Token(testKey))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL().String())
	assert.Equal(t, api.FormatJSON, c.Format())
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "relative base", opt: WithBaseURL("api.congress.gov/v3")},
		{name: "unparseable base", opt: WithBaseURL("http://[::1")},
		{name: "zero timeout", opt: WithTimeout(0)},
		{name: "bad format", opt: WithFormat(api.Format("csv"))},
		{name: "nil http client", opt: WithHTTPClient(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Token(testKey), tt.opt)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cdg:")
		})
	}
}

func TestRestEndpointJoinsBase(t *testing.T) {
	c, err := New(Token(testKey), WithBaseURL("https://api.example.test/v3"))
	require.NoError(t, err)

	u, err := c.RestEndpoint("bill/117/hr/3076")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test/v3/bill/117/hr/3076", u.String())

	_, err = c.RestEndpoint("bill/%zz")
	assert.Error(t, err)
}

func TestSetAuthAppendsKeyLast(t *testing.T) {
	c, err := New(Token(testKey))
	require.NoError(t, err)

	u, err := c.RestEndpoint("congress/current")
	require.NoError(t, err)
	api.AppendQuery(u, "format", "json")
	c.SetAuth(u)
	assert.Equal(t, "format=json&api_key="+testKey, u.RawQuery)
}

func TestQueryThroughServer(t *testing.T) {
	var gotHeader http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v3/bill/117/hr/3076", r.URL.Path)
		assert.Equal(t, "format=json&offset=20&api_key="+testKey, r.URL.RawQuery)
		_ = json.NewEncoder(w).Encode(echo{Path: r.URL.Path, RawQuery: r.URL.RawQuery})
	}))
	defer srv.Close()

	rec := &fakeRecorder{}
	c, err := New(Token(testKey),
		WithBaseURL(srv.URL+"/v3/"),
		WithHTTPClient(srv.Client()),
		WithRecorder(rec),
	)
	require.NoError(t, err)

	offset := 20
	got, err := api.Query[echo](context.Background(), testEndpoint{path: "bill/117/hr/3076", offset: &offset}, c)
	require.NoError(t, err)
	assert.Equal(t, "/v3/bill/117/hr/3076", got.Path)

	assert.Equal(t, "application/json", gotHeader.Get("Accept"))
	assert.Len(t, gotHeader.Get(requestIDHeader), 36)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, recorded{http.MethodGet, "bill/117/hr/3076", http.StatusOK}, rec.calls[0])
}

func TestQueryHTTPStatusFromServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"API_KEY_INVALID"}}`))
	}))
	defer srv.Close()

	c, err := New(Token(testKey), WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = api.Query[echo](context.Background(), testEndpoint{path: "bill"}, c)
	status, ok := api.HTTPStatus(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestXMLFormatAccept(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/xml", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<api-root/>`))
	}))
	defer srv.Close()

	c, err := New(Token(testKey), WithBaseURL(srv.URL), WithHTTPClient(srv.Client()), WithFormat(api.FormatXML))
	require.NoError(t, err)

	resp, err := api.QueryRaw(context.Background(), testEndpoint{path: "bill"}, c)
	require.NoError(t, err)
	assert.Equal(t, `<api-root/>`, string(resp.Body))
}

func TestTransportErrorIsClientKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	var logs bytes.Buffer
	rec := &fakeRecorder{}
	c, err := New(Token(testKey),
		WithBaseURL(base),
		WithLogger(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		WithRecorder(rec),
	)
	require.NoError(t, err)

	_, err = api.Query[echo](context.Background(), testEndpoint{path: "bill"}, c)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindClient))
	assert.NotContains(t, err.Error(), testKey)
	assert.NotContains(t, logs.String(), testKey)
	assert.Contains(t, logs.String(), "congress.gov request failed")

	require.Len(t, rec.calls, 1)
	assert.Equal(t, 0, rec.calls[0].status)
}

func TestLogsNeverContainKey(t *testing.T) {
	srv := echoServer(t)

	var logs bytes.Buffer
	c, err := New(Token(testKey),
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithLogger(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)
	require.NoError(t, err)

	_, err = api.Query[echo](context.Background(), testEndpoint{path: "member/L000174"}, c)
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, `"path":"member/L000174"`)
	assert.Contains(t, out, `"status":200`)
	assert.NotContains(t, out, testKey)
	assert.NotContains(t, out, "api_key")
}

func TestContextCancellation(t *testing.T) {
	srv := echoServer(t)
	c, err := New(Token(testKey), WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = api.Query[echo](ctx, testEndpoint{path: "bill"}, c)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindClient))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentQueriesDoNotCrossContaminate(t *testing.T) {
	srv := echoServer(t)
	rec := &fakeRecorder{}
	c, err := New(Token(testKey), WithBaseURL(srv.URL+"/v3"), WithHTTPClient(srv.Client()), WithRecorder(rec))
	require.NoError(t, err)

	const n = 64
	results := make([]echo, n)
	g, ctx := errgroup.WithContext(context.Background())
	for i := range n {
		g.Go(func() error {
			offset := i * 10
			e := testEndpoint{path: fmt.Sprintf("bill/%d", 100+i), offset: &offset}
			got, err := api.Query[echo](ctx, e, c)
			if err != nil {
				return err
			}
			results[i] = got
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, got := range results {
		assert.Equal(t, fmt.Sprintf("/v3/bill/%d", 100+i), got.Path)
		assert.Equal(t, fmt.Sprintf("format=json&offset=%d&api_key=%s", i*10, testKey), got.RawQuery)
	}
	assert.Len(t, rec.calls, n)
}

func TestWithInstrumentationWrapsTransport(t *testing.T) {
	srv := echoServer(t)
	hc := srv.Client()
	c, err := New(Token(testKey), WithBaseURL(srv.URL), WithHTTPClient(hc), WithInstrumentation())
	require.NoError(t, err)

	outer, ok := c.httpClient.Transport.(hideKey)
	require.True(t, ok)
	_, ok = outer.next.(*otelhttp.Transport)
	assert.True(t, ok)
	assert.NotSame(t, hc, c.httpClient)
	_, ok = hc.Transport.(hideKey)
	assert.False(t, ok, "caller's client must not be modified")

	_, err = api.Query[echo](context.Background(), testEndpoint{path: "congress"}, c)
	require.NoError(t, err)
}

func TestInstrumentedSpansOmitKey(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	srv := echoServer(t)
	c, err := New(Token(testKey), WithBaseURL(srv.URL), WithHTTPClient(srv.Client()), WithInstrumentation())
	require.NoError(t, err)

	got, err := api.Query[echo](context.Background(), testEndpoint{path: "bill"}, c)
	require.NoError(t, err)
	assert.Equal(t, "format=json&api_key="+testKey, got.RawQuery)

	spans := sr.Ended()
	require.NotEmpty(t, spans)
	var urlFull string
	for _, s := range spans {
		assert.NotContains(t, s.Name(), testKey)
		for _, kv := range s.Attributes() {
			assert.NotContains(t, kv.Value.Emit(), testKey, "attribute %s", kv.Key)
			if kv.Key == "url.full" {
				urlFull = kv.Value.AsString()
			}
		}
	}
	assert.Contains(t, urlFull, "/bill?format=json")
}

func TestSplitAuthPair(t *testing.T) {
	tests := []struct {
		raw, rest, pair string
	}{
		{"format=json&api_key=abc", "format=json", "api_key=abc"},
		{"api_key=abc", "", "api_key=abc"},
		{"format=json&offset=10", "format=json&offset=10", ""},
		{"", "", ""},
		{"title=my_api_key%3Dx&api_key=a%2Bb", "title=my_api_key%3Dx", "api_key=a%2Bb"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rest, pair := splitAuthPair(tt.raw)
			assert.Equal(t, tt.rest, rest)
			assert.Equal(t, tt.pair, pair)
		})
	}
}

func TestTimeoutAppliesToSuppliedClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Minute}

	c, err := New(Token(testKey), WithHTTPClient(hc), WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	assert.Equal(t, time.Minute, hc.Timeout, "caller's client must not be modified")

	c, err = New(Token(testKey), WithHTTPClient(hc))
	require.NoError(t, err)
	assert.Same(t, hc, c.httpClient)
}

func TestAuthIsRedacted(t *testing.T) {
	a := Token(testKey)
	assert.False(t, a.Empty())
	assert.Equal(t, "Auth(redacted)", a.String())
	assert.NotContains(t, fmt.Sprintf("%v %+v %#v %s", a, a, a, a), testKey)
	assert.True(t, Token("").Empty())
	assert.Equal(t, "Auth(none)", Token("").String())
}
