package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"comcigan-server/api/comcigan"
	services "comcigan-server/service"
)

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the request id stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ErrorResponse is the body of every non-2xx JSON answer.
type ErrorResponse struct {
	Error     string            `json:"error"`
	RequestID string            `json:"request_id,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("[Handlers] Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, RequestID: RequestIDFrom(r.Context())})
}

// writeValidationError lists the failing field and rule of each violation.
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:     "validation failed",
		RequestID: RequestIDFrom(r.Context()),
		Fields:    fields,
	})
}

// statusFor maps service errors onto HTTP statuses. Anything unrecognised
// is an upstream transport or decode failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, comcigan.ErrEmptyKeyword):
		return http.StatusBadRequest
	case errors.Is(err, comcigan.ErrNoSchoolFound), errors.Is(err, services.ErrClassNotFound):
		return http.StatusNotFound
	case errors.Is(err, comcigan.ErrTeacherEndpointNotSet):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	log.Printf("[Handlers] %s %s failed with %d: %v", r.Method, r.URL.Path, status, err)
	writeError(w, r, status, err.Error())
}
