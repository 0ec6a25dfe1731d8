package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	testCases := []struct {
		name           string
		method         string
		origin         string
		path           string
		expectCors     bool
		expectNext     bool
		expectedStatus int
	}{
		{
			name:           "ConfiguredOrigin",
			origin:         "https://fit.example.org",
			path:           "/plan/today",
			expectCors:     true,
			expectNext:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "LocalDevServer",
			origin:         "http://localhost:5173",
			path:           "/plan/today",
			expectCors:     true,
			expectNext:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "NoOrigin",
			path:           "/steps/2026-10-14",
			expectNext:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "NotAllowedOrigin",
			origin:         "https://www.notallowed.com",
			path:           "/settings",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "MCPFromAnywhere",
			origin:         "https://inspector.example.com",
			path:           "/mcp",
			expectCors:     true,
			expectNext:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight",
			method:         http.MethodOptions,
			origin:         "http://127.0.0.1:3000",
			path:           "/steps/2026-10-14",
			expectCors:     true,
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			method := tc.method
			if method == "" {
				method = http.MethodGet
			}
			rr := httptest.NewRecorder()
			req, err := http.NewRequest(method, tc.path, nil)
			require.NoError(t, err)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})
			handler := Cors([]string{"https://fit.example.org/"})(nextHandler)

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Unexpected status code")
			assert.Equal(t, tc.expectNext, nextCalled)
			if tc.expectCors {
				assert.Equal(t, tc.origin, rr.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
