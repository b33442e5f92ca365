// Package cdg is the HTTP transport for the congress.gov v3 API. A Client
// satisfies api.Client and is safe for concurrent use.
package cdg

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cdg-go/cdg/api"
)

// DefaultBaseURL is the congress.gov v3 API root.
const DefaultBaseURL = "https://api.congress.gov/v3/"

const (
	defaultTimeout  = 30 * time.Second
	requestIDHeader = "X-Request-Id"
)

// Recorder receives one call per completed round trip. Status is 0 when
// the transport failed.
type Recorder interface {
	RecordRequest(ctx context.Context, method, endpoint string, status int, d time.Duration)
}

// Client talks to congress.gov.
type Client struct {
	base       *url.URL
	auth       Auth
	format     api.Format
	httpClient *http.Client
	timeout    time.Duration
	timeoutSet bool
	instrument bool
	logger     *slog.Logger
	recorder   Recorder
}

var _ api.Client = (*Client)(nil)

// New creates a congress.gov client authenticated with auth.
func New(auth Auth, opts ...Option) (*Client, error) {
	base, err := parseBase(DefaultBaseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		base:    base,
		auth:    auth,
		format:  api.FormatJSON,
		timeout: defaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	switch {
	case c.httpClient == nil:
		c.httpClient = &http.Client{Timeout: c.timeout}
	case c.timeoutSet:
		cp := *c.httpClient
		cp.Timeout = c.timeout
		c.httpClient = &cp
	}
	if c.instrument {
		c.httpClient = instrumented(c.httpClient)
	}
	return c, nil
}

// BaseURL returns a copy of the API root.
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

// Format returns the preferred response format.
func (c *Client) Format() api.Format { return c.format }

func (c *Client) RestEndpoint(endpoint string) (*url.URL, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	return c.base.ResolveReference(ref), nil
}

// SetAuth appends api_key to u.
func (c *Client) SetAuth(u *url.URL) {
	c.auth.apply(u)
}

// Rest executes req. A response with any status is returned as long as the
// body could be read.
func (c *Client) Rest(ctx context.Context, req *http.Request) (*api.Response, error) {
	reqID := uuid.NewString()
	req.Header.Set("Accept", c.accept())
	req.Header.Set(requestIDHeader, reqID)

	path := strings.TrimPrefix(req.URL.Path, c.base.Path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.finish(ctx, req.Method, path, reqID, 0, start, err)
		return nil, fmt.Errorf("cdg: %s %s: %w", req.Method, path, scrub(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.finish(ctx, req.Method, path, reqID, resp.StatusCode, start, err)
		return nil, fmt.Errorf("cdg: read body: %w", err)
	}

	c.finish(ctx, req.Method, path, reqID, resp.StatusCode, start, nil)
	return &api.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func (c *Client) finish(ctx context.Context, method, path, reqID string, status int, start time.Time, err error) {
	d := time.Since(start)
	if c.recorder != nil {
		c.recorder.RecordRequest(ctx, method, path, status, d)
	}

	attrs := []any{
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", d.Milliseconds(),
		"request_id", reqID,
	}
	if err != nil {
		c.logger.WarnContext(ctx, "congress.gov request failed", append(attrs, "error", scrub(err).Error())...)
		return
	}
	c.logger.DebugContext(ctx, "congress.gov request", attrs...)
}

func (c *Client) accept() string {
	if c.format == api.FormatXML {
		return "application/xml"
	}
	return "application/json"
}

func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("cdg: invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("cdg: invalid base url %q: scheme and host required", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// scrub drops the query string from *url.Error so the key never reaches a
// log line or an error message.
func scrub(err error) error {
	ue, ok := err.(*url.Error)
	if !ok {
		return err
	}
	u, perr := url.Parse(ue.URL)
	if perr != nil {
		return &url.Error{Op: ue.Op, URL: "", Err: ue.Err}
	}
	u.RawQuery = ""
	return &url.Error{Op: ue.Op, URL: u.String(), Err: ue.Err}
}
