package dag

import "fmt"

// Graph declares nodes and edges (dependency relationships).
// Nodes keep their declaration order, which makes level output deterministic.
type Graph[N comparable] struct {
	Nodes []N
	Edges []Edge[N]
}

// Edge represents a dependency: To depends on From.
type Edge[N comparable] struct {
	From N
	To   N
}

// BuildLevels uses Kahn's algorithm to group nodes by dependency level.
// Nodes within the same level can be processed in parallel.
// Returns an error if a cycle is detected.
func BuildLevels[N comparable](g *Graph[N]) ([][]N, error) {
	inDegree := make(map[N]int, len(g.Nodes))
	dependents := make(map[N][]N)

	for _, n := range g.Nodes {
		inDegree[n] = 0
	}

	for _, e := range g.Edges {
		if _, ok := inDegree[e.From]; !ok {
			return nil, fmt.Errorf("dag: edge references unknown node %v", e.From)
		}
		if _, ok := inDegree[e.To]; !ok {
			return nil, fmt.Errorf("dag: edge references unknown node %v", e.To)
		}
		inDegree[e.To]++
		dependents[e.From] = append(dependents[e.From], e.To)
	}

	var queue []N
	for _, n := range g.Nodes {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	var levels [][]N
	visited := 0

	for len(queue) > 0 {
		levels = append(levels, queue)
		visited += len(queue)

		var next []N
		for _, n := range queue {
			for _, dep := range dependents[n] {
				inDegree[dep]--
				if inDegree[dep] == 0 {
					next = append(next, dep)
				}
			}
		}
		queue = next
	}

	if visited != len(g.Nodes) {
		return nil, fmt.Errorf("dag: cycle detected, processed %d of %d nodes", visited, len(g.Nodes))
	}

	return levels, nil
}

// FindCycle walks the graph depth-first from each root and returns the first
// cycle it meets, as a path that starts and ends with the same node. It
// returns nil for an acyclic graph. Nodes reachable from several roots are
// only expanded once.
func FindCycle[N comparable](roots []N, next func(N) []N) []N {
	done := make(map[N]bool)
	onStack := make(map[N]int)
	var path []N

	var visit func(n N) []N
	visit = func(n N) []N {
		if idx, ok := onStack[n]; ok {
			cycle := make([]N, 0, len(path)-idx+1)
			cycle = append(cycle, path[idx:]...)
			return append(cycle, n)
		}
		if done[n] {
			return nil
		}

		onStack[n] = len(path)
		path = append(path, n)

		for _, m := range next(n) {
			if cycle := visit(m); cycle != nil {
				return cycle
			}
		}

		path = path[:len(path)-1]
		delete(onStack, n)
		done[n] = true
		return nil
	}

	for _, r := range roots {
		if cycle := visit(r); cycle != nil {
			return cycle
		}
	}
	return nil
}
