package cdg

import (
	"context"
	"net/http"
	"strings"
)

type authPairKey struct{}

// hideKey removes the api_key pair from the URL before next sees the
// request, so instrumentation above revealKey records a keyless url.full.
type hideKey struct {
	next http.RoundTripper
}

func (h hideKey) RoundTrip(req *http.Request) (*http.Response, error) {
	rest, pair := splitAuthPair(req.URL.RawQuery)
	if pair == "" {
		return h.next.RoundTrip(req)
	}
	r := req.Clone(context.WithValue(req.Context(), authPairKey{}, pair))
	r.URL.RawQuery = rest
	return h.next.RoundTrip(r)
}

// revealKey puts the pair stashed by hideKey back at the end of the query.
type revealKey struct {
	next http.RoundTripper
}

func (rk revealKey) RoundTrip(req *http.Request) (*http.Response, error) {
	pair, _ := req.Context().Value(authPairKey{}).(string)
	if pair == "" {
		return rk.next.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	if r.URL.RawQuery == "" {
		r.URL.RawQuery = pair
	} else {
		r.URL.RawQuery += "&" + pair
	}
	return rk.next.RoundTrip(r)
}

// splitAuthPair returns rawQuery without its api_key pairs, and the last
// such pair still escaped.
func splitAuthPair(rawQuery string) (rest, pair string) {
	if !strings.Contains(rawQuery, "api_key=") {
		return rawQuery, ""
	}
	kept := make([]string, 0, strings.Count(rawQuery, "&")+1)
	for _, p := range strings.Split(rawQuery, "&") {
		if strings.HasPrefix(p, "api_key=") {
			pair = p
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "&"), pair
}
