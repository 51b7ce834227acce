package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"comcigan-server/server/handlers"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id, reusing one sent by the
// client, and logs the request when it completes.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(handlers.WithRequestID(r.Context(), id)))
		log.Printf("[HttpServer] %s %s request_id=%s took=%s", r.Method, r.URL.Path, id, time.Since(start))
	})
}
