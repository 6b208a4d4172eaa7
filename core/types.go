// SPDX-License-Identifier: MIT
// Package core defines the Graph type, its functional options, the
// Recorder observation surface, and the sentinel errors of the package.
//
// Errors:
//
//	ErrBadCapacity      - negative capacity passed to NewGraph.
//	ErrUnknownEndpoint  - CreateEdge referenced a value that was never registered.
//	ErrVertexNotFound   - a query referenced an unregistered value or ID.
//	ErrEmptyInput       - Build/FromTokens received no tokens.
package core

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/lyricwalk/matrix"
	"github.com/katalvlaran/lyricwalk/registry"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadCapacity indicates a negative capacity.
	ErrBadCapacity = errors.New("core: capacity must be >= 0")

	// ErrUnknownEndpoint indicates an edge endpoint absent from the registry.
	// The edge is skipped; this is never fatal to a build.
	ErrUnknownEndpoint = errors.New("core: unknown edge endpoint")

	// ErrVertexNotFound indicates a query for a value or ID that does not exist.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEmptyInput indicates Build was given an empty token sequence.
	ErrEmptyInput = errors.New("core: empty token sequence")
)

// Recorder observes graph construction events. Implementations must be
// cheap; they are called once per registration and once per edge attempt.
// metrics.Recorder satisfies this interface.
type Recorder interface {
	// ObserveVertex is called for every AddVertex; added is false for duplicates.
	ObserveVertex(added bool)
	// ObserveEdge is called for every CreateEdge; created is false when skipped.
	ObserveEdge(created bool)
}

// nopRecorder is the default Recorder.
type nopRecorder struct{}

func (nopRecorder) ObserveVertex(bool) {}
func (nopRecorder) ObserveEdge(bool)   {}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger routes diagnostics ("vertex added", "failed to create edge")
// to l. Graphs are silent by default. Panics on nil.
func WithLogger(l *slog.Logger) GraphOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(g *Graph) { g.logger = l }
}

// WithRecorder attaches a construction event Recorder. Panics on nil.
func WithRecorder(r Recorder) GraphOption {
	if r == nil {
		panic("core: WithRecorder(nil)")
	}
	return func(g *Graph) { g.rec = r }
}

// WithOnRegister forwards an advisory registration hook to the registry.
func WithOnRegister(fn func(value string, id registry.ID, added bool)) GraphOption {
	opt := registry.WithOnRegister(fn) // validates fn eagerly
	return func(g *Graph) { g.regOpts = append(g.regOpts, opt) }
}

// Graph is the word-adjacency graph.
//
// reg owns vertex values; mat has one row and one column per registered
// vertex, plus zero padding up to the requested capacity.
// Invariant: mat.Size() >= reg.Len() after every mutation.
type Graph struct {
	reg *registry.Registry
	mat *matrix.BitMatrix

	capacity int // requested upper bound, kept for Stats

	logger  *slog.Logger
	rec     Recorder
	regOpts []registry.Option
}

// NewGraph creates an empty Graph whose matrix is pre-sized to
// capacity×capacity. Capacity is an upper bound, typically the token
// count; registering more distinct vertices grows the matrix.
// Complexity: O(capacity²/64).
func NewGraph(capacity int, opts ...GraphOption) (*Graph, error) {
	if capacity < 0 {
		return nil, ErrBadCapacity
	}
	g := &Graph{
		capacity: capacity,
		logger:   slog.New(slog.DiscardHandler),
		rec:      nopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}

	mat, err := matrix.NewBitMatrix(capacity)
	if err != nil {
		return nil, err
	}
	g.mat = mat
	g.reg = registry.New(capacity, g.regOpts...)

	return g, nil
}

// BuildReport summarises one Build call.
type BuildReport struct {
	Tokens           int // tokens consumed
	NewVertices      int // tokens that registered a new vertex
	Duplicates       int // tokens already present
	EdgePairs        int // adjacent pairs processed (Tokens-1)
	UnknownEndpoints int // pairs skipped because an endpoint was missing
}

// Stats is a read-only snapshot of graph shape.
type Stats struct {
	Vertices     int // distinct tokens
	Edges        int // set bits
	SelfLoops    int // vertices followed by themselves
	DeadEnds     int // vertices without outgoing edges
	MaxOutDegree int // largest row population
	MatrixSize   int // allocated matrix dimension (>= Vertices)
}
