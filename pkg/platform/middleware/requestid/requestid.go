// Package requestid assigns every request an identifier for log correlation.
package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"egid/pkg/requestcontext"
)

// Header is the request/response header carrying the request ID.
const Header = "X-Request-ID"

// maxLen bounds caller-supplied IDs so they cannot bloat logs.
const maxLen = 128

// Middleware reuses a caller-supplied X-Request-ID or generates a new one,
// echoes it on the response and stores it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(Header))
		if id == "" || len(id) > maxLen {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
