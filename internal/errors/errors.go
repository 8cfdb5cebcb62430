package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code values used when the server does not declare its own error code.
const (
	// CodeNetwork indicates the transport never produced a response
	// (DNS failure, connection refused, and the like).
	CodeNetwork = "NETWORK_ERROR"
	// CodeInvalidResponse indicates a 2xx response whose shape did not
	// match the operation (binary expected but JSON received, or vice
	// versa).
	CodeInvalidResponse = "INVALID_RESPONSE"
)

// Fixed user-facing messages. Callers surface Message verbatim.
const (
	// NetworkMessage is the message for transport-level failures.
	NetworkMessage = "Network error. Please check your connection."
	// AuthFailedMessage overwrites the server message on any 401.
	AuthFailedMessage = "Authentication failed. Please login again."
)

// APIError is the single error shape every failed remote operation
// surfaces. It is produced exactly once per failure and never
// double-wrapped.
type APIError struct {
	// Message is ready-made user feedback text.
	Message string
	// Code is the server-declared error code, or a synthesized
	// HTTP_<status> / taxonomy code when the server declared none.
	Code string
	// Status is the HTTP status, 0 when no response was reached.
	Status int
	// Cause is the underlying error for transport failures (optional).
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Network creates the error for a transport-level failure: the request
// never reached the server, so there is no status.
func Network(cause error) *APIError {
	return &APIError{
		Message: NetworkMessage,
		Code:    CodeNetwork,
		Cause:   cause,
	}
}

// InvalidResponse creates the error for a success response with an
// unexpected shape.
func InvalidResponse(message string) *APIError {
	return &APIError{
		Message: message,
		Code:    CodeInvalidResponse,
	}
}

// FromStatus creates the error for a non-2xx response. message and code
// come from the parsed error body when the server declared them;
// otherwise pass them empty and a message and code are synthesized from
// the status. A 401 overwrites the message with AuthFailedMessage while
// preserving the declared code and status.
func FromStatus(status int, message, code string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	if code == "" {
		code = fmt.Sprintf("HTTP_%d", status)
	}
	if status == http.StatusUnauthorized {
		message = AuthFailedMessage
	}
	return &APIError{
		Message: message,
		Code:    code,
		Status:  status,
	}
}

// IsNetwork checks if an error is a transport-level failure.
func IsNetwork(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == CodeNetwork
}

// IsInvalidResponse checks if an error is a response-shape mismatch.
func IsInvalidResponse(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == CodeInvalidResponse
}

// IsAuthFailure checks if an error is a 401 from the server.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// CodeOf returns the error code, or empty string for non-API errors.
func CodeOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// StatusOf returns the HTTP status, or 0 for non-API errors and
// transport failures.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// UserMessage returns feedback text for any error. APIError messages are
// surfaced verbatim; anything else falls back to its Error string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
