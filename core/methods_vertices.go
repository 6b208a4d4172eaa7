// File: methods_vertices.go
// Role: Vertex admission & queries.
//
// Determinism:
//   - Vertices() returns values in first-occurrence (ID) order.
//
// Invariant:
//   - After AddVertex returns, the new ID has a row and a column in the matrix.
package core

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lyricwalk/registry"
)

// minGrowth is the dimension used when a zero-capacity matrix first grows.
const minGrowth = 8

// AddVertex registers value if missing (idempotent).
//
// Implementation:
//   - Stage 1: Delegate to the registry; it is the only admission path.
//   - Stage 2: If a new ID falls outside the matrix, grow the matrix by doubling.
//   - Stage 3: Report the event to the logger and the Recorder.
//
// Returns:
//   - registry.ID: the vertex ID (existing or newly assigned).
//   - bool: true iff the value was newly added.
//
// Complexity:
//   - Time O(1) amortized; O(V²/64) on the rare growth step.
func (g *Graph) AddVertex(value string) (registry.ID, bool) {
	id, added := g.reg.Register(value)
	if !added {
		g.logger.Debug("vertex already in graph", slog.String("value", value), slog.Int("id", int(id)))
		g.rec.ObserveVertex(false)
		return id, false
	}

	if int(id) >= g.mat.Size() {
		g.growFor(int(id) + 1)
	}
	g.logger.Debug("vertex added", slog.String("value", value), slog.Int("id", int(id)))
	g.rec.ObserveVertex(true)

	return id, true
}

// growFor enlarges the matrix so that at least need rows exist.
func (g *Graph) growFor(need int) {
	n := g.mat.Size() * 2
	if n < minGrowth {
		n = minGrowth
	}
	for n < need {
		n *= 2
	}
	// Grow only fails on shrink or nil receiver; neither is reachable here.
	if err := g.mat.Grow(n); err != nil {
		panic(fmt.Sprintf("core: matrix grow to %d: %v", n, err))
	}
	g.logger.Debug("adjacency matrix grown", slog.Int("size", n), slog.Int("capacity", g.capacity))
}

// AddVertices registers every value in order and returns how many were new.
func (g *Graph) AddVertices(values []string) int {
	added := 0
	for _, v := range values {
		if _, ok := g.AddVertex(v); ok {
			added++
		}
	}
	return added
}

// HasVertex reports whether value is registered.
func (g *Graph) HasVertex(value string) bool {
	_, ok := g.reg.Find(value)
	return ok
}

// Find resolves value to its vertex ID.
func (g *Graph) Find(value string) (registry.ID, bool) {
	return g.reg.Find(value)
}

// Value resolves a vertex ID back to its token.
func (g *Graph) Value(id registry.ID) (string, error) {
	v, err := g.reg.Value(id)
	if err != nil {
		return "", fmt.Errorf("Value: %w: %w", ErrVertexNotFound, err)
	}
	return v, nil
}

// Vertices returns all vertex values in ID order.
func (g *Graph) Vertices() []string {
	return g.reg.Values()
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int {
	return g.reg.Len()
}
