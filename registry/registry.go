// SPDX-License-Identifier: MIT
// Package: lyricwalk/registry
//
// registry.go: deduplicating, append-only vertex arena.
//
// Contract:
//   • Register is the sole admission path; a value is stored at most once.
//   • IDs are dense positions in first-occurrence order (0,1,2,...).
//   • Nothing is ever removed, so an ID stays valid for the registry lifetime.
//   • Lookup is O(1) through a value→ID index; the arena keeps insertion order.
//
// Concurrency:
//   • Not synchronized. Build first, then share read-only.

package registry

import (
	"errors"
	"fmt"
)

// ErrUnknownID is returned by Value when an ID was never assigned.
var ErrUnknownID = errors.New("registry: unknown vertex id")

// ID is the stable position of a vertex inside its Registry.
type ID int

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithOnRegister installs an advisory hook called on every Register call.
// added reports whether the value was new ("added") or already present.
// Panics on nil to surface programmer error early.
func WithOnRegister(fn func(value string, id ID, added bool)) Option {
	if fn == nil {
		panic("registry: WithOnRegister(nil)")
	}
	return func(r *Registry) {
		r.onRegister = fn
	}
}

// Registry owns the canonical set of distinct token vertices.
type Registry struct {
	values     []string      // arena: ID → value, insertion order
	index      map[string]ID // value → ID
	onRegister func(value string, id ID, added bool)
}

// New returns an empty Registry pre-sized for capacity values.
// A negative capacity is treated as zero.
// Complexity: O(capacity) space.
func New(capacity int, opts ...Option) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	r := &Registry{
		values:     make([]string, 0, capacity),
		index:      make(map[string]ID, capacity),
		onRegister: func(string, ID, bool) {},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register admits value if it is not yet present.
// It returns the vertex ID and true when the value was appended, or the
// existing ID and false when it was already registered (no mutation).
// Complexity: O(1) amortized.
func (r *Registry) Register(value string) (ID, bool) {
	if id, ok := r.index[value]; ok {
		r.onRegister(value, id, false)
		return id, false
	}
	id := ID(len(r.values))
	r.values = append(r.values, value)
	r.index[value] = id
	r.onRegister(value, id, true)

	return id, true
}

// Find returns the ID of value, or false if it was never registered.
// Complexity: O(1).
func (r *Registry) Find(value string) (ID, bool) {
	id, ok := r.index[value]
	return id, ok
}

// Value returns the token stored at id.
func (r *Registry) Value(id ID) (string, error) {
	if id < 0 || int(id) >= len(r.values) {
		return "", fmt.Errorf("Value(%d): %w", id, ErrUnknownID)
	}
	return r.values[id], nil
}

// Len reports the number of distinct registered values.
func (r *Registry) Len() int {
	return len(r.values)
}

// Values returns a copy of all registered values in ID order.
func (r *Registry) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}
