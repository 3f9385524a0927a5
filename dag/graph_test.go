package dag

import (
	"reflect"
	"testing"
)

func adjacency(m map[string][]string) func(string) []string {
	return func(n string) []string { return m[n] }
}

func TestFindCycle(t *testing.T) {
	tests := []struct {
		name  string
		roots []string
		edges map[string][]string
		want  []string
	}{
		{
			name:  "acyclic chain",
			roots: []string{"a", "b", "c"},
			edges: map[string][]string{"a": {"b"}, "b": {"c"}},
			want:  nil,
		},
		{
			name:  "diamond is not a cycle",
			roots: []string{"a"},
			edges: map[string][]string{"a": {"b", "c"}, "b": {"d"}, "c": {"d"}},
			want:  nil,
		},
		{
			name:  "two node cycle",
			roots: []string{"a", "b"},
			edges: map[string][]string{"a": {"b"}, "b": {"a"}},
			want:  []string{"a", "b", "a"},
		},
		{
			name:  "self loop",
			roots: []string{"x"},
			edges: map[string][]string{"x": {"x"}},
			want:  []string{"x", "x"},
		},
		{
			name:  "cycle below an entry node",
			roots: []string{"root"},
			edges: map[string][]string{"root": {"a"}, "a": {"b"}, "b": {"c"}, "c": {"a"}},
			want:  []string{"a", "b", "c", "a"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindCycle(tc.roots, adjacency(tc.edges))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBuildLevels(t *testing.T) {
	g := &Graph[string]{
		Nodes: []string{"config", "db", "cache", "service"},
		Edges: []Edge[string]{
			{From: "config", To: "db"},
			{From: "config", To: "cache"},
			{From: "db", To: "service"},
			{From: "cache", To: "service"},
		},
	}

	levels, err := BuildLevels(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"config"}, {"db", "cache"}, {"service"}}
	if !reflect.DeepEqual(levels, want) {
		t.Errorf("expected %v, got %v", want, levels)
	}
}

func TestBuildLevels_Cycle(t *testing.T) {
	g := &Graph[string]{
		Nodes: []string{"a", "b"},
		Edges: []Edge[string]{{From: "a", To: "b"}, {From: "b", To: "a"}},
	}
	if _, err := BuildLevels(g); err == nil {
		t.Fatal("expected cycle error")
	}
}

func TestBuildLevels_UnknownNode(t *testing.T) {
	g := &Graph[string]{
		Nodes: []string{"a"},
		Edges: []Edge[string]{{From: "a", To: "ghost"}},
	}
	if _, err := BuildLevels(g); err == nil {
		t.Fatal("expected unknown node error")
	}
}

func TestBuildLevels_Empty(t *testing.T) {
	levels, err := BuildLevels(&Graph[int]{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(levels) != 0 {
		t.Errorf("expected no levels, got %v", levels)
	}
}
