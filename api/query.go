package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Query executes e against c and decodes the JSON response into T.
//
// The body is parsed before the status is checked, so a body that is not
// JSON is reported as an HTTP error with whatever status came back, 200
// included. Decoding failures and `validate` tag failures on T are data-type
// errors.
func Query[T any](ctx context.Context, e Endpoint, c Client) (T, error) {
	var out T

	resp, err := send(ctx, e, c)
	if err != nil {
		return out, err
	}

	var generic any
	if err := json.Unmarshal(resp.Body, &generic); err != nil {
		return out, &Error{Kind: KindHTTP, Status: resp.StatusCode}
	}
	if !resp.Success() {
		return out, &Error{Kind: KindHTTP, Status: resp.StatusCode}
	}

	if err := decode(resp.Body, &out); err != nil {
		return out, &Error{Kind: KindDataType, Status: resp.StatusCode, Err: err}
	}
	return out, nil
}

// QueryRaw executes e against c and returns the response untouched. It is
// the only way to consume XML responses. A non-2xx status is an HTTP error.
func QueryRaw(ctx context.Context, e Endpoint, c Client) (*Response, error) {
	resp, err := send(ctx, e, c)
	if err != nil {
		return nil, err
	}
	if !resp.Success() {
		return nil, &Error{Kind: KindHTTP, Status: resp.StatusCode}
	}
	return resp, nil
}

func send(ctx context.Context, e Endpoint, c Client) (*Response, error) {
	u, err := e.URLBase().EndpointFor(c, e.Endpoint())
	if err != nil {
		return nil, &Error{Kind: KindURLParse, Err: err}
	}

	e.Parameters().AddToURL(u)
	c.SetAuth(u)

	req, err := http.NewRequestWithContext(ctx, e.Method(), u.String(), http.NoBody)
	if err != nil {
		return nil, &Error{Kind: KindRequest, Err: err}
	}

	resp, err := c.Rest(ctx, req)
	if err != nil {
		return nil, &Error{Kind: KindClient, Err: err}
	}
	return resp, nil
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return err
	}
	if err := validateShape(out); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}
