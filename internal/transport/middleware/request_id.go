package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/amteixeira/uvtrack-backend/pkg/ctxutil"
)

// RequestIDHeader carries the correlation ID on requests and responses.
const RequestIDHeader = "X-Request-Id"

// RequestID attaches a correlation ID to the request context and echoes
// it in the response header. An incoming header value is trusted;
// otherwise a fresh UUID is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
