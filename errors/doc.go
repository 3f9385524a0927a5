// Package errors provides the unified error type for scopekit.
//
// Container construction reports DUPLICATE_BINDING, UNSATISFIED_DEPENDENCY,
// CYCLIC_DEPENDENCY and INVALID_BINDING; resolution reports MISSING_CONTEXT,
// CONSTRUCTION_FAILED and CONTAINER_CLOSED. Use HasCode to branch on a kind:
//
//	if errors.HasCode(err, errors.ErrCodeMissingContext) { ... }
package errors
