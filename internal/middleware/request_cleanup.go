package middleware

import (
	"io"
	"net/http"
)

// drainLimit caps how much of an unread body is discarded before closing.
const drainLimit = 256 << 10

// DrainAndCloseRequest discards what the handler left unread of the request
// body, so the connection can be reused, and closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.CopyN(io.Discard, r.Body, drainLimit)
				_ = r.Body.Close()
			}
		})
	}
}
