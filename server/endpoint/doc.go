// Package endpoint provides the system handlers every host registers:
// /health, /info and /bindings.
package endpoint
