package cdg

import (
	"net/url"

	"github.com/cdg-go/cdg/api"
)

// Auth is the api.data.gov key sent with every request.
type Auth struct {
	token string
}

// Token wraps an API key.
func Token(key string) Auth { return Auth{token: key} }

// Empty reports whether no key was supplied.
func (a Auth) Empty() bool { return a.token == "" }

func (a Auth) String() string {
	if a.token == "" {
		return "Auth(none)"
	}
	return "Auth(redacted)"
}

// GoString keeps %#v from printing the key.
func (a Auth) GoString() string { return a.String() }

func (a Auth) apply(u *url.URL) {
	api.AppendQuery(u, "api_key", a.token)
}
