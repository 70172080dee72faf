package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of an API error.
type ErrorType int

// Error type constants categorize errors for proper handling and retry logic.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeNetwork indicates a network connectivity issue.
	ErrorTypeNetwork
	// ErrorTypeTimeout indicates the request exceeded its deadline.
	ErrorTypeTimeout
	// ErrorTypeRateLimit indicates rate limit was exceeded.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication indicates invalid or expired credentials.
	ErrorTypeAuthentication
	// ErrorTypeBadRequest indicates invalid request parameters.
	ErrorTypeBadRequest
	// ErrorTypeNotFound indicates the requested resource does not exist.
	ErrorTypeNotFound
	// ErrorTypeServerError indicates a server-side error.
	ErrorTypeServerError
	// ErrorTypeInsufficientFunds indicates account lacks required balance.
	ErrorTypeInsufficientFunds
	// ErrorTypeInvalidOrder indicates the order violates exchange rules.
	ErrorTypeInvalidOrder
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	names := [...]string{
		"UNKNOWN",
		"NETWORK",
		"TIMEOUT",
		"RATE_LIMIT",
		"AUTHENTICATION",
		"BAD_REQUEST",
		"NOT_FOUND",
		"SERVER_ERROR",
		"INSUFFICIENT_FUNDS",
		"INVALID_ORDER",
	}
	if t < 0 || int(t) >= len(names) {
		return "UNKNOWN"
	}
	return names[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNoCredentials is returned when a signed request is made without API credentials.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrUnsupportedMethod is returned for routes whose verb is not GET, POST, PUT or DELETE.
	ErrUnsupportedMethod = errors.New("unsupported http method")
	// ErrCircuitOpen is returned while a venue's circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("circuit open")
)

// APIError is a structured error returned by the exchange as a {code, msg} body.
type APIError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"status_code"`
	// Code is the exchange error code, usually negative.
	Code int `json:"code"`
	// Message is the human-readable error description.
	Message string `json:"msg"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return fmt.Sprintf("[binance] %s (%d/%d): %s", e.Type, e.StatusCode, e.Code, e.Message)
}

// NewAPIError creates an APIError and classifies it from its code and message.
func NewAPIError(statusCode, code int, message string) *APIError {
	return &APIError{
		Type:       classify(statusCode, code, message),
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

func classify(statusCode, code int, message string) ErrorType {
	if code == CodeNewOrderRejected && strings.Contains(strings.ToLower(message), "insufficient balance") {
		return ErrorTypeInsufficientFunds
	}
	if t := ErrorTypeFromCode(code); t != ErrorTypeUnknown {
		return t
	}
	switch {
	case statusCode == 429 || statusCode == 418:
		return ErrorTypeRateLimit
	case statusCode == 401 || statusCode == 403:
		return ErrorTypeAuthentication
	case statusCode == 404:
		return ErrorTypeNotFound
	case statusCode >= 500:
		return ErrorTypeServerError
	case statusCode >= 400:
		return ErrorTypeBadRequest
	}
	return ErrorTypeUnknown
}

// ValidationError is returned when a request fails a local check before any network activity.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid request: " + e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// TransportError covers failures below the API layer: connection errors,
// unreadable bodies and responses that match neither the expected type nor the error envelope.
type TransportError struct {
	Op         string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.StatusCode > 0 {
		fmt.Fprintf(&sb, ": http %d", e.StatusCode)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	if len(e.Body) > 0 {
		body := e.Body
		if len(body) > 256 {
			body = body[:256]
		}
		fmt.Fprintf(&sb, ": body=%q", body)
	}
	return sb.String()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned by local lookups, for example an asset missing from an account snapshot.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// AsAPIError extracts an APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func isAPIErrorType(err error, t ErrorType) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Type == t
}

// IsValidationError reports whether err is a local validation failure.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// IsTransportError reports whether err is a transport or decode failure.
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// IsNotFoundError reports whether err is a local lookup miss.
func IsNotFoundError(err error) bool {
	var nErr *NotFoundError
	return errors.As(err, &nErr)
}

// IsRateLimitError returns true if the error is a rate limit violation.
// Rate limit errors should be retried after a delay.
func IsRateLimitError(err error) bool {
	return isAPIErrorType(err, ErrorTypeRateLimit)
}

// IsAuthenticationError returns true if the error is an authentication failure.
func IsAuthenticationError(err error) bool {
	return isAPIErrorType(err, ErrorTypeAuthentication)
}

// IsTimeoutError returns true if the exchange reported a timeout.
func IsTimeoutError(err error) bool {
	return isAPIErrorType(err, ErrorTypeTimeout)
}

// IsTerminalError returns true if the error indicates a terminal condition.
// Terminal errors should not be retried as they will not succeed.
func IsTerminalError(err error) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return IsValidationError(err) || IsNotFoundError(err)
	}
	return apiErr.Type == ErrorTypeInsufficientFunds ||
		apiErr.Type == ErrorTypeInvalidOrder ||
		apiErr.Type == ErrorTypeNotFound
}
