package middlewares

import (
	"fmt"
	"net/http"
)

// RequestSizeLimitMiddleware caps request bodies at maxBytes.
// A declared Content-Length above the cap is refused before the handler runs;
// chunked bodies are cut off by http.MaxBytesReader while they are decoded.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	tooLarge := fmt.Sprintf("request body exceeds %d bytes", maxBytes)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				writeError(w, r, http.StatusRequestEntityTooLarge, tooLarge)
				return
			}

			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
