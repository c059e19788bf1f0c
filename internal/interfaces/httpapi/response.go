package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "scoreboard"

	// matches the upstream breaker's default open window
	retryAfterSeconds = "30"
)

// googleResponseEnvelope follows the Google JSON style guide. A nil Data is
// omitted, which is how "no summary" reaches clients.
type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var (
	internalErrorMapping = mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}

	// checked in order, first match wins
	errorMappings = []struct {
		target error
		mapped mappedError
	}{
		{usecase.ErrInvalidInput, mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}},
		{usecase.ErrNotFound, mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}},
		{usecase.ErrDependencyUnavailable, mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}},
	}
)

func (m mappedError) envelope(message string) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    m.HTTPStatus,
			Message: message,
			Status:  m.Status,
			Errors:  []googleErrorItem{{Domain: errorDomain, Reason: m.Reason, Message: message}},
		},
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{APIVersion: googleAPIVersion, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	if mapped.HTTPStatus == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", retryAfterSeconds)
	}
	writeJSON(ctx, w, mapped.HTTPStatus, mapped.envelope(err.Error()))
}

// writeInternalError hides the cause; it is logged by the caller.
func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, internalErrorMapping.HTTPStatus, internalErrorMapping.envelope("internal server error"))
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	for _, m := range errorMappings {
		if crerr.Is(err, m.target) {
			return m.mapped
		}
	}
	return internalErrorMapping
}
