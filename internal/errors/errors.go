package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized is returned when the bearer token is missing or invalid.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden is returned when the caller's role does not match the route.
	ErrForbidden = errors.New("forbidden access")
	// ErrInvalidID is returned when an id parameter is not a valid document id.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound is returned when a targeted document does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key already exists.
	ErrDuplicate = errors.New("duplicate record")
	// ErrValidation is returned when a request payload is malformed.
	ErrValidation = errors.New("validation failed")
	// ErrNoSeatsAvailable is returned when a class has no seats left.
	ErrNoSeatsAvailable = errors.New("no seats available")
	// ErrAlreadyEnrolled is returned when a student already paid for a class.
	ErrAlreadyEnrolled = errors.New("student already enrolled in class")
	// ErrInvalidAmount is returned when amount is invalid.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrPriceMismatch is returned when a client price differs from the class price.
	ErrPriceMismatch = errors.New("price does not match class price")
	// ErrPaymentNotConfirmed is returned when the gateway has not settled the payment.
	ErrPaymentNotConfirmed = errors.New("payment not confirmed")
	// ErrPaymentReused is returned when a transaction already paid for an enrollment.
	ErrPaymentReused = errors.New("payment already used for an enrollment")
	// ErrPaymentGateway is returned when the payment gateway call fails.
	ErrPaymentGateway = errors.New("payment gateway error")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:   true,
		Message: e.Message,
		Code:    e.Code,
	}
}

// NewErrorResponse builds an ErrorResponse from a message and code.
func NewErrorResponse(message, code string) ErrorResponse {
	return ErrorResponse{Error: true, Message: message, Code: code}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidID.Error(), "INVALID_ID")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidAmount.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrPriceMismatch):
		return NewHTTPError(http.StatusBadRequest, ErrPriceMismatch.Error(), "PRICE_MISMATCH")
	case errors.Is(err, ErrPaymentNotConfirmed):
		return NewHTTPError(http.StatusPaymentRequired, err.Error(), "PAYMENT_NOT_CONFIRMED")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrDuplicate):
		return NewHTTPError(http.StatusConflict, ErrDuplicate.Error(), "DUPLICATE")
	case errors.Is(err, ErrNoSeatsAvailable):
		return NewHTTPError(http.StatusConflict, ErrNoSeatsAvailable.Error(), "NO_SEATS_AVAILABLE")
	case errors.Is(err, ErrAlreadyEnrolled):
		return NewHTTPError(http.StatusConflict, ErrAlreadyEnrolled.Error(), "ALREADY_ENROLLED")
	case errors.Is(err, ErrPaymentReused):
		return NewHTTPError(http.StatusConflict, ErrPaymentReused.Error(), "PAYMENT_REUSED")
	case errors.Is(err, ErrPaymentGateway):
		return NewHTTPError(http.StatusBadGateway, ErrPaymentGateway.Error(), "PAYMENT_GATEWAY_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
