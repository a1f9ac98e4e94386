package graph_test

import (
	"testing"

	"github.com/onepassplus/onepass-plus/graph"
)

func TestNewGraph_InvalidCount(t *testing.T) {
	if _, err := graph.NewGraph(0); err != graph.ErrInvalidVertexCount {
		t.Fatalf("expected ErrInvalidVertexCount, got %v", err)
	}
}

func TestAddEdge_NegativeWeight(t *testing.T) {
	g, err := graph.NewGraph(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, -1); err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := graph.NewGraph(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 5, 1); err == nil {
		t.Fatal("expected error for out-of-range vertex")
	}
}

func TestOutEdges_DeterministicOrder(t *testing.T) {
	g, err := graph.NewGraph(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range []graph.Edge{
		{From: 0, To: 3, Weight: 1},
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 2, Weight: 3},
	} {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			t.Fatal(err)
		}
	}

	edges, err := g.OutEdges(0)
	if err != nil {
		t.Fatal(err)
	}
	want := []graph.Vertex{1, 2, 3}
	if len(edges) != len(want) {
		t.Fatalf("got %d edges, want %d", len(edges), len(want))
	}
	for i, e := range edges {
		if e.To != want[i] {
			t.Errorf("edges[%d].To = %v, want %v", i, e.To, want[i])
		}
	}
}

func TestEdgeWeight_NotFound(t *testing.T) {
	g, err := graph.NewGraph(2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.EdgeWeight(0, 1); err == nil {
		t.Fatal("expected ErrEdgeNotFound")
	}
}

func TestReverse(t *testing.T) {
	g, err := graph.NewGraph(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 4); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 2, 5); err != nil {
		t.Fatal(err)
	}

	rev, err := g.Reverse()
	if err != nil {
		t.Fatal(err)
	}
	if !rev.HasEdge(1, 0) || !rev.HasEdge(2, 1) {
		t.Fatal("reversed graph missing expected edges")
	}
	w, err := rev.EdgeWeight(2, 1)
	if err != nil || w != 5 {
		t.Fatalf("rev weight(2,1) = %v, %v; want 5, nil", w, err)
	}
}
