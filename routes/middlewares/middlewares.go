package middlewares

import (
	"context"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/gofrs/uuid"
	"github.com/mbolis/quick-forms/log"
)

type ctxKey int

const requestIDKey ctxKey = iota

// RequestID tags every request with a fresh UUID, exposed to handlers through
// the context and to clients through the X-Request-Id header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.NewV4()
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-Request-Id", id.String())
		ctx := context.WithValue(r.Context(), requestIDKey, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLogger writes one line per request with method, path, status code,
// bytes written and wall time.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		log.Infof("%s %s %d %dB %s rid=%s",
			r.Method, r.URL.Path, m.Code, m.Written, m.Duration, GetRequestID(r.Context()))
	})
}
