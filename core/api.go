// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Construction facade (Build, FromTokens) and read-only reporting
//       (Stats, DeadEnds, Matrix, Capacity).
// Policy:
//   - Build never fails on a single bad pair; it counts and continues.
//   - Reporting methods are pure queries and allocate only their results.

package core

import (
	"log/slog"
)

// Build applies the construction contract to tokens:
//
//  1. register every token as a vertex (deduplicating);
//  2. create a directed edge tokens[i] → tokens[i+1] for every adjacent pair.
//
// Behavior highlights:
//   - Every pair is attempted; a CreateEdge failure is counted in
//     BuildReport.UnknownEndpoints and the build moves on.
//   - Calling Build twice on one Graph merges both token streams.
//
// Errors:
//   - ErrEmptyInput when tokens is empty.
//
// Complexity:
//   - Time O(n) amortized for n tokens, plus matrix growth if capacity was short.
func (g *Graph) Build(tokens []string) (BuildReport, error) {
	var rep BuildReport
	if len(tokens) == 0 {
		return rep, ErrEmptyInput
	}
	rep.Tokens = len(tokens)

	for _, tok := range tokens {
		if _, added := g.AddVertex(tok); added {
			rep.NewVertices++
		} else {
			rep.Duplicates++
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		rep.EdgePairs++
		if err := g.CreateEdge(tokens[i], tokens[i+1]); err != nil {
			rep.UnknownEndpoints++
		}
	}

	g.logger.Info("graph built",
		slog.Int("tokens", rep.Tokens),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("skipped_edges", rep.UnknownEndpoints),
	)

	return rep, nil
}

// FromTokens allocates a Graph with capacity len(tokens) and builds it.
func FromTokens(tokens []string, opts ...GraphOption) (*Graph, BuildReport, error) {
	if len(tokens) == 0 {
		return nil, BuildReport{}, ErrEmptyInput
	}
	g, err := NewGraph(len(tokens), opts...)
	if err != nil {
		return nil, BuildReport{}, err
	}
	rep, err := g.Build(tokens)
	if err != nil {
		return nil, rep, err
	}

	return g, rep, nil
}

// Capacity returns the capacity requested at construction.
func (g *Graph) Capacity() int {
	return g.capacity
}

// Stats produces a snapshot of vertex/edge counts and dead ends.
// Complexity: O(V²/64).
func (g *Graph) Stats() Stats {
	n := g.reg.Len()
	s := Stats{
		Vertices:   n,
		Edges:      g.mat.Count(),
		MatrixSize: g.mat.Size(),
	}
	for i := 0; i < n; i++ {
		deg, _ := g.mat.RowCount(i)
		if deg == 0 {
			s.DeadEnds++
		}
		if deg > s.MaxOutDegree {
			s.MaxOutDegree = deg
		}
		if loop, _ := g.mat.Has(i, i); loop {
			s.SelfLoops++
		}
	}

	return s
}

// DeadEnds returns, in ID order, every vertex without outgoing edges.
// A walk that reaches one of these stops early.
func (g *Graph) DeadEnds() []string {
	var out []string
	for i, v := range g.reg.Values() {
		if deg, _ := g.mat.RowCount(i); deg == 0 {
			out = append(out, v)
		}
	}
	return out
}

// Matrix renders the live VertexCount×VertexCount block of the adjacency
// matrix as '0'/'1' rows: row = source, column = destination, in ID order.
// Padding beyond the vertex count is omitted.
func (g *Graph) Matrix() string {
	return g.mat.Block(g.reg.Len())
}
