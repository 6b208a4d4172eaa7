// Package walk generates token sequences by uniform random walks over a
// word-adjacency graph.
//
// At every step the walker reads the current vertex's row, collects the set
// columns in order and picks one with probability 1/|candidates|. It is a
// first-order random walk on an unweighted directed graph, not a
// frequency-weighted Markov model.
package walk

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lyricwalk/registry"
)

// maxPrealloc caps the up-front Words capacity; length is caller input.
const maxPrealloc = 64

// Sentence walks g from start for up to length words.
//
//  1. Unknown start ⇒ empty Words, StopUnresolved, nil error.
//  2. Emit start.
//  3. Repeat length-1 times: collect out-edges of the current vertex; none
//     ⇒ StopDeadEnd with the partial sequence; otherwise pick one uniformly.
//
// Returns ErrGraphNil, ErrBadLength, ErrOptionViolation for invalid input,
// ErrNeighbors if the graph fails a lookup, or the context error when
// cancelled between steps (with the words gathered so far).
// Complexity: O(length · V/64).
func Sentence(g Graph, start string, length int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if length < 1 {
		return Result{}, fmt.Errorf("Sentence(%q, %d): %w", start, length, ErrBadLength)
	}

	res := Result{Start: start, Target: length,
		Words: make([]string, 0, min(length, g.VertexCount()+1, maxPrealloc))}
	cur, ok := g.Find(start)
	if !ok {
		res.Stop = StopUnresolved
		finish(o, res)
		return res, nil
	}
	word, err := g.Value(cur)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrNeighbors, err)
	}
	res.Words = append(res.Words, word)
	o.OnStep(0, word)

	for step := 1; step < length; step++ {
		if err = o.Ctx.Err(); err != nil {
			return res, err
		}
		var next []registry.ID
		next, err = g.SuccessorIDs(cur)
		if err != nil {
			return res, fmt.Errorf("%w: %w", ErrNeighbors, err)
		}
		if len(next) == 0 {
			res.Stop = StopDeadEnd
			break
		}
		cur = next[o.Rand.Intn(len(next))]
		if word, err = g.Value(cur); err != nil {
			return res, fmt.Errorf("%w: %w", ErrNeighbors, err)
		}
		res.Words = append(res.Words, word)
		o.OnStep(step, word)
	}
	finish(o, res)

	return res, nil
}

// finish reports a completed walk to the logger and Recorder.
func finish(o Options, res Result) {
	o.Recorder.ObserveWalk(res.Stop.String(), len(res.Words))
	o.Logger.Debug("walk finished",
		slog.String("start", res.Start),
		slog.Int("target", res.Target),
		slog.Int("words", len(res.Words)),
		slog.String("stop", res.Stop.String()),
	)
}

// Traverse is the words-only form of Sentence. Any error (nil graph,
// length < 1) yields an empty sequence. A nil rng uses the default stream.
func Traverse(g Graph, start string, length int, rng *rand.Rand) []string {
	var opts []Option
	if rng != nil {
		opts = append(opts, WithRand(rng))
	}
	res, err := Sentence(g, start, length, opts...)
	if err != nil || res.Words == nil {
		return []string{}
	}
	return res.Words
}

// RandomStart picks a registered vertex uniformly at random.
// A nil rng uses the default deterministic stream.
func RandomStart(g Graph, rng *rand.Rand) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return "", ErrEmptyGraph
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	return g.Value(registry.ID(rng.Intn(n)))
}
