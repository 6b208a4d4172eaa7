package walk_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/lyricwalk/core"
	"github.com/katalvlaran/lyricwalk/registry"
	"github.com/katalvlaran/lyricwalk/walk"
	"github.com/stretchr/testify/require"
)

// build is a tiny helper that builds a graph from space-separated words.
func build(t testing.TB, text string) *core.Graph {
	t.Helper()
	g, _, err := core.FromTokens(strings.Fields(text))
	require.NoError(t, err)
	return g
}

// stopRecorder tallies walks by stop label; safe for concurrent use.
type stopRecorder struct {
	mu    sync.Mutex
	stops map[string]int
	words int
}

func (r *stopRecorder) ObserveWalk(stop string, words int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stops == nil {
		r.stops = make(map[string]int)
	}
	r.stops[stop]++
	r.words += words
}

// TestSentence_DeadEnd stops early at a vertex without out-edges.
func TestSentence_DeadEnd(t *testing.T) {
	t.Parallel()
	g := build(t, "x y")

	res, err := walk.Sentence(g, "y", 5)
	require.NoError(t, err)
	require.Equal(t, []string{"y"}, res.Words)
	require.Equal(t, walk.StopDeadEnd, res.Stop)

	res, err = walk.Sentence(g, "x", 5)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, res.Words)
	require.Equal(t, walk.StopDeadEnd, res.Stop)
}

// TestSentence_HugeLength ends at the dead end without sizing for the target.
func TestSentence_HugeLength(t *testing.T) {
	t.Parallel()
	g := build(t, "x y")

	require.NotPanics(t, func() {
		require.Equal(t, []string{"y"}, walk.Traverse(g, "y", math.MaxInt, nil))
	})

	var res walk.Result
	require.NotPanics(t, func() {
		var err error
		res, err = walk.Sentence(g, "x", math.MaxInt)
		require.NoError(t, err)
	})
	require.Equal(t, []string{"x", "y"}, res.Words)
	require.Equal(t, walk.StopDeadEnd, res.Stop)
	require.Equal(t, math.MaxInt, res.Target)
}

// TestSentence_Unresolved returns an empty sequence for an unknown start.
func TestSentence_Unresolved(t *testing.T) {
	t.Parallel()
	g := build(t, "x y")

	res, err := walk.Sentence(g, "z", 3)
	require.NoError(t, err)
	require.NotNil(t, res.Words)
	require.Empty(t, res.Words)
	require.Equal(t, walk.StopUnresolved, res.Stop)
	require.Equal(t, []string{}, walk.Traverse(g, "z", 3, nil))
}

// TestSentence_LengthBound walks a cycle for exactly the requested length.
func TestSentence_LengthBound(t *testing.T) {
	t.Parallel()
	g := build(t, "a b c a")

	for _, l := range []int{1, 2, 7, 31} {
		res, err := walk.Sentence(g, "a", l, walk.WithSeed(int64(l)))
		require.NoError(t, err)
		require.Len(t, res.Words, l)
		require.Equal(t, walk.StopComplete, res.Stop)
	}
	// single-successor cycle is deterministic
	require.Equal(t, []string{"a", "b", "c", "a", "b"}, walk.Traverse(g, "a", 5, nil))
}

// TestSentence_FollowsEdges checks every consecutive pair is a real edge.
func TestSentence_FollowsEdges(t *testing.T) {
	t.Parallel()
	g := build(t, "i want you i need you you want me i want it all")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		words := walk.Traverse(g, "i", 8, rng)
		require.NotEmpty(t, words)
		require.Equal(t, "i", words[0])
		for j := 0; j+1 < len(words); j++ {
			require.True(t, g.HasEdge(words[j], words[j+1]), "%v", words)
		}
	}
}

// TestSentence_Uniformity checks each of k candidates is picked ≈ 1/k of the time.
func TestSentence_Uniformity(t *testing.T) {
	t.Parallel()
	g := build(t, "hub a hub b hub c hub d")
	succ, err := g.Successors("hub")
	require.NoError(t, err)
	require.Len(t, succ, 4)

	const trials = 40000
	rng := rand.New(rand.NewSource(7))
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		res, err := walk.Sentence(g, "hub", 2, walk.WithRand(rng))
		require.NoError(t, err)
		require.Len(t, res.Words, 2)
		counts[res.Words[1]]++
	}

	want := trials / len(succ)
	for _, s := range succ {
		require.InDelta(t, want, counts[s], float64(want)*0.05, "candidate %q", s)
	}
}

// TestSentence_Deterministic verifies the same seed gives the same walk.
func TestSentence_Deterministic(t *testing.T) {
	t.Parallel()
	g := build(t, "we will we will rock you we rock")

	a, err := walk.Sentence(g, "we", 12, walk.WithSeed(99))
	require.NoError(t, err)
	b, err := walk.Sentence(g, "we", 12, walk.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestSentence_Errors covers input validation.
func TestSentence_Errors(t *testing.T) {
	t.Parallel()
	g := build(t, "x y")

	_, err := walk.Sentence(nil, "x", 2)
	require.ErrorIs(t, err, walk.ErrGraphNil)

	_, err = walk.Sentence(g, "x", 0)
	require.ErrorIs(t, err, walk.ErrBadLength)
	require.Equal(t, []string{}, walk.Traverse(g, "x", 0, nil))

	_, err = walk.Sentence(g, "x", 2, walk.WithRand(nil))
	require.ErrorIs(t, err, walk.ErrOptionViolation)
}

// brokenGraph fails successor lookups.
type brokenGraph struct{ *core.Graph }

var errBroken = errors.New("broken row")

func (brokenGraph) SuccessorIDs(registry.ID) ([]registry.ID, error) { return nil, errBroken }

// TestSentence_NeighborFailure wraps graph errors with ErrNeighbors.
func TestSentence_NeighborFailure(t *testing.T) {
	t.Parallel()
	g := brokenGraph{build(t, "x y")}

	res, err := walk.Sentence(g, "x", 3)
	require.ErrorIs(t, err, walk.ErrNeighbors)
	require.ErrorIs(t, err, errBroken)
	require.Equal(t, []string{"x"}, res.Words)
}

// TestSentence_Hooks verifies OnStep, Recorder and context cancellation.
func TestSentence_Hooks(t *testing.T) {
	t.Parallel()
	g := build(t, "a b c a")

	var steps []int
	rec := &stopRecorder{}
	res, err := walk.Sentence(g, "a", 4,
		walk.WithOnStep(func(step int, _ string) { steps = append(steps, step) }),
		walk.WithRecorder(rec),
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, steps)
	require.Equal(t, map[string]int{"complete": 1}, rec.stops)
	require.Equal(t, 4, rec.words)
	require.Len(t, res.Words, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err = walk.Sentence(g, "a", 4, walk.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []string{"a"}, res.Words)
}

// TestRandomStart covers uniform start selection and the empty graph.
func TestRandomStart(t *testing.T) {
	t.Parallel()
	g := build(t, "one two three")
	rng := rand.New(rand.NewSource(3))

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		s, err := walk.RandomStart(g, rng)
		require.NoError(t, err)
		require.True(t, g.HasVertex(s))
		seen[s] = true
	}
	require.Len(t, seen, 3)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	_, err = walk.RandomStart(empty, nil)
	require.ErrorIs(t, err, walk.ErrEmptyGraph)
	_, err = walk.RandomStart(nil, nil)
	require.ErrorIs(t, err, walk.ErrGraphNil)
}

// TestRandomStart_IgnoresTokenFrequency draws over distinct vertices, not tokens.
func TestRandomStart_IgnoresTokenFrequency(t *testing.T) {
	t.Parallel()
	g := build(t, "a a a a a a a a a b")
	rng := rand.New(rand.NewSource(11))

	const draws = 4000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		s, err := walk.RandomStart(g, rng)
		require.NoError(t, err)
		counts[s]++
	}
	require.InDelta(t, 0.5, float64(counts["b"])/draws, 0.05)
}

// TestStop_String pins the metric labels.
func TestStop_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "complete", walk.StopComplete.String())
	require.Equal(t, "dead_end", walk.StopDeadEnd.String())
	require.Equal(t, "unresolved", walk.StopUnresolved.String())
	require.Equal(t, "stop(9)", walk.Stop(9).String())
}
