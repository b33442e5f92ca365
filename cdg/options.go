package cdg

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cdg-go/cdg/api"
)

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL overrides the API root. A missing trailing slash is added so
// relative endpoints resolve beneath it.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := parseBase(raw)
		if err != nil {
			return err
		}
		c.base = u
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client (for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("cdg: nil http client")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTimeout sets the per-request timeout of the HTTP client. Combined
// with WithHTTPClient it applies to a copy of that client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("cdg: timeout must be positive, got %s", d)
		}
		c.timeout = d
		c.timeoutSet = true
		return nil
	}
}

// WithFormat sets the preferred response format, used for the Accept header.
func WithFormat(f api.Format) Option {
	return func(c *Client) error {
		if !f.Valid() {
			return fmt.Errorf("cdg: invalid format %q", string(f))
		}
		c.format = f
		return nil
	}
}

// WithLogger sets the logger used for request logs.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithRecorder reports each completed request to r.
func WithRecorder(r Recorder) Option {
	return func(c *Client) error {
		c.recorder = r
		return nil
	}
}

// WithInstrumentation wraps the transport with OpenTelemetry HTTP client
// spans and metrics.
func WithInstrumentation() Option {
	return func(c *Client) error {
		c.instrument = true
		return nil
	}
}

// instrumented copies hc with an otelhttp transport. The API key is lifted
// off the URL around the otelhttp layer so spans never carry it.
func instrumented(hc *http.Client) *http.Client {
	cp := *hc
	base := cp.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	cp.Transport = hideKey{next: otelhttp.NewTransport(revealKey{next: base},
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "cdg " + r.Method + " " + r.URL.Path
		}),
	)}
	return &cp
}
