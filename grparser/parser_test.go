package grparser_test

import (
	"strings"
	"testing"

	"github.com/onepassplus/onepass-plus/grparser"
)

func TestParse_Triangle(t *testing.T) {
	input := "d\n3 3\n0 1 1 0\n1 2 2 0\n0 2 5 0\n"
	g, err := grparser.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if g.NumVertices() != 3 {
		t.Fatalf("NumVertices() = %d, want 3", g.NumVertices())
	}
	w, err := g.EdgeWeight(1, 2)
	if err != nil || w != 2 {
		t.Fatalf("EdgeWeight(1,2) = %v, %v; want 2, nil", w, err)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if _, err := grparser.Parse(strings.NewReader("")); err != grparser.ErrEmptyInput {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestParse_WrongHeader(t *testing.T) {
	_, err := grparser.Parse(strings.NewReader("u\n2 1\n0 1 1 0\n"))
	if err == nil {
		t.Fatal("expected error for non-directed header")
	}
}

func TestParse_EdgeCountMismatch(t *testing.T) {
	input := "d\n2 2\n0 1 1 0\n"
	_, err := grparser.Parse(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected edge count mismatch error")
	}
}

func TestParse_MalformedEdge(t *testing.T) {
	input := "d\n2 1\nnot-an-edge\n"
	_, err := grparser.Parse(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected malformed edge error")
	}
}

func TestParse_SkipsBlankLines(t *testing.T) {
	input := "d\n\n2 1\n\n0 1 3 0\n\n"
	g, err := grparser.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	w, err := g.EdgeWeight(0, 1)
	if err != nil || w != 3 {
		t.Fatalf("EdgeWeight(0,1) = %v, %v; want 3, nil", w, err)
	}
}
