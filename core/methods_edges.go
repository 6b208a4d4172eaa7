// File: methods_edges.go
// Role: Edge insertion & adjacency queries.
//
// Orientation:
//   - matrix row = source, column = destination. CreateEdge writes (from,to);
//     every read (HasEdge, Successors, walks) scans a fixed row. Keep both sides
//     in agreement or walks run backwards.
package core

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lyricwalk/registry"
)

// CreateEdge records that from is directly followed by to.
//
// Steps:
//  1. Resolve both endpoints by value.
//  2. Missing endpoint ⇒ return ErrUnknownEndpoint, matrix untouched.
//  3. Set bit (from,to). Re-creating an existing edge is a no-op.
//
// Complexity: O(1).
func (g *Graph) CreateEdge(from, to string) error {
	fi, fok := g.reg.Find(from)
	ti, tok := g.reg.Find(to)
	if !fok || !tok {
		err := unknownEndpointError(from, to, fok, tok)
		g.logger.Warn("failed to create edge",
			slog.String("from", from), slog.String("to", to), slog.Any("error", err))
		g.rec.ObserveEdge(false)
		return err
	}
	if err := g.mat.Set(int(fi), int(ti)); err != nil {
		// unreachable while the matrix invariant holds
		return fmt.Errorf("CreateEdge %q->%q: %w", from, to, err)
	}
	g.rec.ObserveEdge(true)

	return nil
}

// unknownEndpointError names which endpoint(s) were missing.
func unknownEndpointError(from, to string, fok, tok bool) error {
	switch {
	case !fok && !tok:
		return fmt.Errorf("CreateEdge %q->%q: both endpoints: %w", from, to, ErrUnknownEndpoint)
	case !fok:
		return fmt.Errorf("CreateEdge %q->%q: source %q: %w", from, to, from, ErrUnknownEndpoint)
	default:
		return fmt.Errorf("CreateEdge %q->%q: target %q: %w", from, to, to, ErrUnknownEndpoint)
	}
}

// HasEdge reports whether from→to exists. Unknown values report false.
func (g *Graph) HasEdge(from, to string) bool {
	fi, fok := g.reg.Find(from)
	ti, tok := g.reg.Find(to)
	if !fok || !tok {
		return false
	}
	ok, err := g.mat.Has(int(fi), int(ti))
	return err == nil && ok
}

// SuccessorIDs returns the IDs directly following id, in ascending ID order.
// Complexity: O(V/64 + k).
func (g *Graph) SuccessorIDs(id registry.ID) ([]registry.ID, error) {
	if id < 0 || int(id) >= g.reg.Len() {
		return nil, fmt.Errorf("SuccessorIDs(%d): %w", id, ErrVertexNotFound)
	}
	cols, err := g.mat.Row(int(id))
	if err != nil {
		return nil, fmt.Errorf("SuccessorIDs(%d): %w", id, err)
	}
	out := make([]registry.ID, len(cols))
	for i, c := range cols {
		out[i] = registry.ID(c)
	}

	return out, nil
}

// Successors returns the values directly following value, in ID order.
func (g *Graph) Successors(value string) ([]string, error) {
	id, ok := g.reg.Find(value)
	if !ok {
		return nil, fmt.Errorf("Successors %q: %w", value, ErrVertexNotFound)
	}
	ids, err := g.SuccessorIDs(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ids))
	for i, sid := range ids {
		// IDs come from a live row, so Value cannot fail
		out[i], _ = g.reg.Value(sid)
	}

	return out, nil
}

// OutDegree returns the number of distinct successors of value.
func (g *Graph) OutDegree(value string) (int, error) {
	id, ok := g.reg.Find(value)
	if !ok {
		return 0, fmt.Errorf("OutDegree %q: %w", value, ErrVertexNotFound)
	}
	return g.mat.RowCount(int(id))
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	return g.mat.Count()
}
