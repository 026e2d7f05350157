// Package errors maps formlens failures onto gofulmen error envelopes and
// provides the HTTP error responder used by the server.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"net/http"

	"github.com/fulmenhq/gofulmen/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/formlens/formlens/internal/dialog"
	"github.com/formlens/formlens/internal/imaging"
	"github.com/formlens/formlens/internal/observability"
	"github.com/formlens/formlens/internal/server/middleware"
)

// Error creation helpers for common error types

func NewInvalidInputError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope("INVALID_INPUT", message)
}

func NewNotFoundError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope("NOT_FOUND", message)
}

func NewMethodNotAllowedError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope("METHOD_NOT_ALLOWED", message)
}

func NewValidationError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope("VALIDATION_FAILED", message)
}

func NewDecodeError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope("DECODE_FAILED", message)
}

func NewIOError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope("IO_FAILURE", message)
}

func NewInternalError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope("INTERNAL_ERROR", message)
}

func NewDatabaseError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope("DATABASE_ERROR", message)
}

// FromError classifies a core failure into the envelope taxonomy:
// hard validation failures from the prompt builder, decode failures from
// the image codec, and filesystem errors from encode sources.
func FromError(err error) *errors.ErrorEnvelope {
	if err == nil {
		env := errors.NewErrorEnvelope("INTERNAL_ERROR", "unexpected nil error")
		env, _ = env.WithSeverity(errors.SeverityCritical)
		return env
	}

	if envelope, ok := err.(*errors.ErrorEnvelope); ok && envelope != nil {
		return envelope
	}

	var verr *dialog.ValidationError
	if stderrors.As(err, &verr) {
		return NewValidationError(verr.Error())
	}

	var derr *imaging.DecodeError
	if stderrors.As(err, &derr) {
		return NewDecodeError(derr.Error())
	}

	var perr *fs.PathError
	if stderrors.As(err, &perr) {
		return NewIOError(err.Error())
	}

	env := errors.NewErrorEnvelope("INTERNAL_ERROR", "unexpected error")
	env, _ = env.WithContext(map[string]interface{}{
		"wrapped_error": err.Error(),
	})
	env, _ = env.WithSeverity(errors.SeverityHigh)
	return env
}

// EnsureCorrelationID attaches a correlation ID to the envelope, preferring
// the request ID already on the context.
func EnsureCorrelationID(envelope *errors.ErrorEnvelope, requestID string) *errors.ErrorEnvelope {
	if envelope == nil {
		return nil
	}
	if envelope.CorrelationID != "" {
		return envelope
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return envelope.WithCorrelationID(requestID)
}

// HTTPStatusFromCode resolves the HTTP status code corresponding to an error code.
func HTTPStatusFromCode(code string) int {
	switch code {
	case "INVALID_INPUT", "VALIDATION_FAILED", "DECODE_FAILED":
		return http.StatusBadRequest
	case "NOT_FOUND":
		return http.StatusNotFound
	case "METHOD_NOT_ALLOWED":
		return http.StatusMethodNotAllowed
	case "IO_FAILURE":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorDetail captures the error body returned to callers.
type HTTPErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// HTTPErrorResponse wraps HTTPErrorDetail in the standard envelope structure.
type HTTPErrorResponse struct {
	Error HTTPErrorDetail `json:"error"`
}

// RespondWithError normalizes the supplied error and writes a JSON response.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}

	envelope := FromError(err)

	requestID := ""
	if r != nil {
		requestID = middleware.GetRequestID(r.Context())
	}
	envelope = EnsureCorrelationID(envelope, requestID)

	statusCode := HTTPStatusFromCode(envelope.Code)

	response := HTTPErrorResponse{
		Error: HTTPErrorDetail{
			Code:      envelope.Code,
			Message:   envelope.Message,
			RequestID: envelope.CorrelationID,
		},
	}

	logHTTPError(envelope, statusCode)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

func logHTTPError(envelope *errors.ErrorEnvelope, statusCode int) {
	if observability.ServerLogger == nil || envelope == nil {
		return
	}

	fields := []zap.Field{
		zap.String("error_code", envelope.Code),
		zap.Int("http_status", statusCode),
	}
	if envelope.CorrelationID != "" {
		fields = append(fields, zap.String("request_id", envelope.CorrelationID))
	}

	if statusCode >= http.StatusInternalServerError {
		observability.ServerLogger.Error(envelope.Message, fields...)
	} else {
		observability.ServerLogger.Warn(envelope.Message, fields...)
	}
}
