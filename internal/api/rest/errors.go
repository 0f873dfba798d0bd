package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest          ErrorCode = "bad_request"
	errCodeValidationFailed    ErrorCode = "validation_failed"
	errCodeUnauthorized        ErrorCode = "unauthorized"
	errCodeForbidden           ErrorCode = "forbidden"
	errCodeNotFound            ErrorCode = "not_found"
	errCodeConflict            ErrorCode = "conflict"
	errCodeIllegalTransition   ErrorCode = "illegal_transition"
	errCodeInsufficientCredits ErrorCode = "insufficient_credits"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeUnavailable   ErrorCode = "unavailable"
	errCodeTimeout       ErrorCode = "timeout"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}
	if len(details) > 0 {
		response.Error.Details = details[0]
	}
	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondDomainError maps the error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a 500 and gets logged with the real cause; the
// client only sees the message.
func respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, message, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, message, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, message, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, message, err.Error())
	case errors.Is(err, domain.ErrInsufficientCredits):
		respondWithError(c, http.StatusPaymentRequired, errCodeInsufficientCredits, message, err.Error())
	case errors.Is(err, domain.ErrIllegalTransition):
		respondWithError(c, http.StatusConflict, errCodeIllegalTransition, message, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		respondWithError(c, http.StatusConflict, errCodeConflict, message, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		respondWithError(c, http.StatusServiceUnavailable, errCodeUnavailable, message)
	case errors.Is(err, domain.ErrTimeout):
		respondWithError(c, http.StatusGatewayTimeout, errCodeTimeout, message)
	default:
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
	}
}
