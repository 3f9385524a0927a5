// Package component defines lifecycle-managed parts of a host and a
// registry that starts them in order and stops them in reverse.
//
// ForContainer adapts a di.Container so the root container is started
// (warmed) and stopped (closed) with everything else.
package component
