package testutil

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
)

// AssertEndpoint checks the method, path and encoded parameters of e.
func AssertEndpoint(t *testing.T, e api.Endpoint, wantPath, wantQuery string) {
	t.Helper()
	require.NotNil(t, e)
	assert.Equal(t, http.MethodGet, e.Method())
	assert.Equal(t, api.URLBaseV3, e.URLBase())
	assert.Equal(t, wantPath, e.Endpoint())
	assert.Equal(t, wantQuery, e.Parameters().Encode())
}

// AssertMissingField checks that err reports field as missing.
func AssertMissingField(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrMissingField), "want ErrMissingField, got %v", err)

	var mf *api.MissingFieldError
	require.True(t, errors.As(err, &mf), "want *api.MissingFieldError, got %T", err)
	assert.Equal(t, field, mf.Field)
}
