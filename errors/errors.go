package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Chain returns the key chain recorded on a binding-graph error, or nil.
func (e *AppError) Chain() []string {
	chain, _ := e.Details["chain"].([]string)
	return chain
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Binding graph errors ---

// DuplicateBinding reports a second declaration for key in container.
func DuplicateBinding(container, key string) *AppError {
	return &AppError{
		Code: ErrCodeDuplicateBinding, Message: fmt.Sprintf("%s is bound more than once in %s", key, container),
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"container": container, "key": key},
	}
}

// UnsatisfiedDependency reports a key with no reachable binding. chain lists
// the keys walked from the declaring binding to the missing key.
func UnsatisfiedDependency(container string, chain []string) *AppError {
	missing := ""
	if len(chain) > 0 {
		missing = chain[len(chain)-1]
	}
	return &AppError{
		Code:       ErrCodeUnsatisfiedDependency,
		Message:    fmt.Sprintf("no binding for %s reachable from %s (%s)", missing, container, strings.Join(chain, " -> ")),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"container": container, "key": missing, "chain": chain},
	}
}

// CyclicDependency reports a cycle. The chain starts and ends with the same key.
func CyclicDependency(container string, chain []string) *AppError {
	return &AppError{
		Code:       ErrCodeCyclicDependency,
		Message:    fmt.Sprintf("dependency cycle in %s: %s", container, strings.Join(chain, " -> ")),
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"container": container, "chain": chain},
	}
}

// InvalidBinding reports a malformed declaration.
func InvalidBinding(key, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidBinding, Message: fmt.Sprintf("invalid binding for %s: %s", key, reason),
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"key": key},
	}
}

// --- Resolution errors ---

// MissingContext reports a context binding resolved before its value was attached.
func MissingContext(container, key string) *AppError {
	return &AppError{
		Code: ErrCodeMissingContext, Message: fmt.Sprintf("context %s is not attached to %s", key, container),
		HTTPStatus: http.StatusInternalServerError, Retryable: true,
		Details: map[string]any{"container": container, "key": key},
	}
}

// ConstructionFailed wraps an error returned by a provider function.
func ConstructionFailed(key string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConstructionFailed, Message: fmt.Sprintf("provider for %s failed", key),
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
		Details: map[string]any{"key": key},
	}
}

// ContainerClosed reports use of a container after Close.
func ContainerClosed(container string) *AppError {
	return &AppError{
		Code: ErrCodeContainerClosed, Message: fmt.Sprintf("container %s is closed", container),
		HTTPStatus: http.StatusServiceUnavailable,
		Details:    map[string]any{"container": container},
	}
}

// --- Request errors ---

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Details: details,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
