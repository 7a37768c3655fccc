package middleware

import (
	"io"
	"net/http"
)

// MaxRequestBodyBytes caps request bodies. A full workout with all its sets fits easily.
const MaxRequestBodyBytes = 1 << 20

// LimitAndDrainRequest caps the body size for handlers, then drains and closes
// whatever they left unread so the connection can be reused.
func LimitAndDrainRequest(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := r.Body
			r.Body = http.MaxBytesReader(w, body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBytes))
			_ = body.Close()
		})
	}
}
