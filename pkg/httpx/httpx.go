// Package httpx writes JSON responses and maps business errors to the
// API error envelope.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fitstack/memberd/pkg/apperr"
	"github.com/fitstack/memberd/pkg/validator"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	StatusCode int    `json:"statusCode"`
	Details    string `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error classifies err and writes the matching envelope. Typed business
// errors map to their kind's status; validation rule errors map to 400;
// everything else is a 500 with no internal detail leaked.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if appErr := apperr.As(err); appErr != nil {
		status := statusFor(appErr.Kind())
		JSON(w, status, errorEnvelope{Error: ErrorBody{
			Message:    appErr.Error(),
			Code:       appErr.Code(),
			StatusCode: status,
		}})
		return
	}

	if ve := validator.Extract(err); ve != nil {
		JSON(w, http.StatusBadRequest, errorEnvelope{Error: ErrorBody{
			Message:    "Request validation failed",
			Code:       string(apperr.KindValidation),
			StatusCode: http.StatusBadRequest,
			Details:    ve.Error(),
		}})
		return
	}

	log.ErrorContext(r.Context(), "unhandled error", "error", err, "path", r.URL.Path)
	JSON(w, http.StatusInternalServerError, errorEnvelope{Error: ErrorBody{
		Message:    "Internal server error",
		Code:       string(apperr.KindInternal),
		StatusCode: http.StatusInternalServerError,
	}})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads the request body as JSON into v.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}
