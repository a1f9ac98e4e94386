package dijkstra_test

import (
	"testing"

	"github.com/onepassplus/onepass-plus/dijkstra"
	"github.com/onepassplus/onepass-plus/graph"
)

func mustGraph(t *testing.T, n int, edges [][3]float64) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(n)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for _, e := range edges {
		if err := g.AddEdge(graph.Vertex(e[0]), graph.Vertex(e[1]), e[2]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return g
}

func TestFrom_NilGraph(t *testing.T) {
	_, err := dijkstra.From(nil, 0)
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestFrom_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 3, nil)
	_, err := dijkstra.From(g, 5)
	if err == nil {
		t.Fatal("expected error for out-of-range source")
	}
}

func TestFrom_Triangle(t *testing.T) {
	// 0 -> 1 (1), 1 -> 2 (2), 0 -> 2 (5): shortest 0->2 is via 1, length 3.
	g := mustGraph(t, 3, [][3]float64{
		{0, 1, 1},
		{1, 2, 2},
		{0, 2, 5},
	})

	res, err := dijkstra.From(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[2] != 3 {
		t.Errorf("dist[2] = %v, want 3", res.Dist[2])
	}

	path, ok := res.PathTo(2)
	if !ok {
		t.Fatal("expected a path to 2")
	}
	want := []graph.Vertex{0, 1, 2}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestFrom_Unreachable(t *testing.T) {
	g := mustGraph(t, 2, nil)
	res, err := dijkstra.From(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[1] != dijkstra.Infinity {
		t.Errorf("dist[1] = %v, want +Inf", res.Dist[1])
	}
}

func TestDistanceToTarget_ReversesGraph(t *testing.T) {
	// 0 -> 1 (1), 1 -> 2 (1): dist_to_t for t=2 should be dist[0]=2, dist[1]=1, dist[2]=0.
	g := mustGraph(t, 3, [][3]float64{
		{0, 1, 1},
		{1, 2, 1},
	})

	dist, err := dijkstra.DistanceToTarget(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if dist[2] != 0 || dist[1] != 1 || dist[0] != 2 {
		t.Errorf("dist_to_t = %v, want [2 1 0]", dist)
	}
}

func TestDistanceToTarget_UnreachableTarget(t *testing.T) {
	g := mustGraph(t, 2, nil)
	dist, err := dijkstra.DistanceToTarget(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != dijkstra.Infinity {
		t.Errorf("dist_to_t[0] = %v, want +Inf", dist[0])
	}
}
