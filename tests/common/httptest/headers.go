//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders compares response headers. An empty expected value means the
// header must not be set at all.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Empty(t, w.Header().Values(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertAllowedOrigin checks the CORS decision for origin; allowed=false
// expects a 403 with no Access-Control-Allow-Origin header.
func AssertAllowedOrigin(t *testing.T, w *httptest.ResponseRecorder, origin string, allowed bool) {
	t.Helper()
	if !allowed {
		assert.Equal(t, 403, w.Code, "origin %s should be rejected", origin)
		AssertHeaders(t, w, map[string]string{"Access-Control-Allow-Origin": ""})
		return
	}
	AssertHeaders(t, w, map[string]string{"Access-Control-Allow-Origin": origin})
}
