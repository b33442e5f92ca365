package api

import (
	"net/http"
	"net/url"
)

// URLBase selects the API root an endpoint is resolved against.
type URLBase int

const (
	// URLBaseV3 is the current /v3/ root.
	URLBaseV3 URLBase = iota
)

// EndpointFor resolves endpoint against the root selected by b.
func (b URLBase) EndpointFor(c Client, endpoint string) (*url.URL, error) {
	switch b {
	case URLBaseV3:
		return c.RestEndpoint(endpoint)
	}
	return c.RestEndpoint(endpoint)
}

// Endpoint describes a single REST call.
type Endpoint interface {
	// Method is the HTTP method, GET for every congress.gov endpoint.
	Method() string
	// Endpoint is the path relative to the URL base, with all path
	// segments already interpolated.
	Endpoint() string
	// URLBase selects the API root.
	URLBase() URLBase
	// Parameters returns a fresh list of query parameters.
	Parameters() *QueryParams
}

// GetEndpoint supplies the Method and URLBase shared by every endpoint.
// Embed it in endpoint types.
type GetEndpoint struct{}

func (GetEndpoint) Method() string   { return http.MethodGet }
func (GetEndpoint) URLBase() URLBase { return URLBaseV3 }
