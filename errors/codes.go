package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Binding graph errors, detected when a container is built.
const (
	// ErrCodeDuplicateBinding indicates two declarations in one container target the same key.
	ErrCodeDuplicateBinding ErrorCode = "DUPLICATE_BINDING"
	// ErrCodeUnsatisfiedDependency indicates a required key has no reachable binding.
	ErrCodeUnsatisfiedDependency ErrorCode = "UNSATISFIED_DEPENDENCY"
	// ErrCodeCyclicDependency indicates the binding graph contains a cycle.
	ErrCodeCyclicDependency ErrorCode = "CYCLIC_DEPENDENCY"
	// ErrCodeInvalidBinding indicates a malformed declaration.
	ErrCodeInvalidBinding ErrorCode = "INVALID_BINDING"
)

// Resolution errors
const (
	// ErrCodeMissingContext indicates a context-dependent binding was resolved
	// without its context value attached.
	ErrCodeMissingContext ErrorCode = "MISSING_CONTEXT"
	// ErrCodeConstructionFailed indicates a provider function returned an error.
	ErrCodeConstructionFailed ErrorCode = "CONSTRUCTION_FAILED"
	// ErrCodeContainerClosed indicates resolution was attempted on a closed container.
	ErrCodeContainerClosed ErrorCode = "CONTAINER_CLOSED"
)

// Request errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeServiceUnavailable indicates the service is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// A missing context can be attached and the resolution repeated; construction
// failures are left to the provider's own semantics.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeMissingContext:     true,
	ErrCodeServiceUnavailable: true,
	ErrCodeInternal:           false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
