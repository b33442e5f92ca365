package testutil

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/cdg-go/cdg/api"
)

// FakeBaseURL is the root FakeClient resolves endpoints against.
const FakeBaseURL = "https://api.example.test/v3/"

// FakeClient satisfies api.Client without a network. It records every
// request and answers with a canned response, or with Handler when set.
type FakeClient struct {
	BaseURL string
	Key     string
	Status  int
	Header  http.Header
	Body    []byte
	Err     error
	Handler func(req *http.Request) (*api.Response, error)

	mu       sync.Mutex
	requests []*http.Request
}

// NewFakeClient returns a FakeClient answering every request with status
// and body.
func NewFakeClient(status int, body string) *FakeClient {
	return &FakeClient{Key: "test-key", Status: status, Body: []byte(body)}
}

func (f *FakeClient) RestEndpoint(endpoint string) (*url.URL, error) {
	raw := f.BaseURL
	if raw == "" {
		raw = FakeBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	return base.ResolveReference(ref), nil
}

func (f *FakeClient) SetAuth(u *url.URL) {
	api.AppendQuery(u, "api_key", f.Key)
}

func (f *FakeClient) Rest(_ context.Context, req *http.Request) (*api.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if f.Handler != nil {
		return f.Handler(req)
	}
	return &api.Response{StatusCode: f.Status, Header: f.Header, Body: f.Body}, nil
}

// Requests returns the requests seen so far.
func (f *FakeClient) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*http.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// LastURL returns the URL of the most recent request, or "" if none.
func (f *FakeClient) LastURL() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return ""
	}
	return f.requests[len(f.requests)-1].URL.String()
}

// Fixture reads a canned response body from testdata.
func Fixture(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(FixturesDir(), name))
}

// FixturesDir returns the absolute path of internal/testutil/testdata.
func FixturesDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata")
}
