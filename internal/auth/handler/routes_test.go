package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that all routes are mounted.
func TestRegisterRoutes(t *testing.T) {
	ts := newTestStack(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodPost, "/signup"},
		{http.MethodPost, "/login"},
		{http.MethodPost, "/verify-2fa"},
		{http.MethodPost, "/verify-token"},
		{http.MethodPost, "/logout"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := ts.app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 404 means it doesn't;
			// the handlers themselves return other codes for an empty body.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
