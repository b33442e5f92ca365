package api

import (
	"context"
	"net/http"
	"net/url"
)

// Client is a transport that can reach the REST API.
type Client interface {
	// RestEndpoint joins the client's base URL with a relative endpoint path.
	RestEndpoint(endpoint string) (*url.URL, error)

	// SetAuth adds the client's credential to u. It runs after every
	// endpoint parameter has been added.
	SetAuth(u *url.URL)

	// Rest executes req and returns the raw response. Errors are transport
	// failures; HTTP status codes are reported through the Response.
	Rest(ctx context.Context, req *http.Request) (*Response, error)
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Success reports whether the status code is 2xx.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
