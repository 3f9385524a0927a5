// Package dag provides the graph algorithms behind binding validation:
// depth-first cycle search with a recursion stack, and Kahn level grouping
// used to warm eager singletons level by level.
package dag
