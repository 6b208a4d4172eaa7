// Package walk provides tunable options, result types and error definitions
// for random walks over a word-adjacency graph.
package walk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lyricwalk/registry"
)

// Sentinel errors for walk execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrBadLength is returned when the target length is below 1.
	ErrBadLength = errors.New("walk: length must be >= 1")

	// ErrEmptyGraph is returned by RandomStart when no vertex is registered.
	ErrEmptyGraph = errors.New("walk: graph has no vertices")

	// ErrBadPlan is returned when a verse Plan is inconsistent.
	ErrBadPlan = errors.New("walk: invalid verse plan")

	// ErrNeighbors is returned when reading a vertex's out-edges fails.
	ErrNeighbors = errors.New("walk: successor lookup failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// Graph is the read-only view a walk needs. *core.Graph satisfies it.
type Graph interface {
	Find(value string) (registry.ID, bool)
	Value(id registry.ID) (string, error)
	SuccessorIDs(id registry.ID) ([]registry.ID, error)
	VertexCount() int
}

// Recorder observes finished walks. It must be safe for concurrent use when
// Verses runs with more than one worker. metrics.Recorder satisfies it.
type Recorder interface {
	ObserveWalk(stop string, words int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveWalk(string, int) {}

// Stop tells why a walk ended.
type Stop int

const (
	// StopComplete means the walk reached its target length.
	StopComplete Stop = iota
	// StopDeadEnd means the walk reached a vertex without out-edges first.
	StopDeadEnd
	// StopUnresolved means the start value was never registered.
	StopUnresolved
)

// String returns the metric/log label of s.
func (s Stop) String() string {
	switch s {
	case StopComplete:
		return "complete"
	case StopDeadEnd:
		return "dead_end"
	case StopUnresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("stop(%d)", int(s))
	}
}

// Result holds the outcome of one walk:
//   - Words: visited token values, start first. Empty when unresolved.
//   - Stop: why the walk ended.
//   - Start, Target: the request that produced it.
//
// len(Words) == min(Target, 1 + steps taken before a dead end).
type Result struct {
	Words  []string
	Stop   Stop
	Start  string
	Target int
}

// Option configures a walk via functional arguments.
// Invalid options are recorded and surfaced as an error when the walk runs.
type Option func(*Options)

// Options holds parameters and callbacks for a walk.
type Options struct {
	// Ctx allows cancellation between steps.
	Ctx context.Context

	// Rand is the randomness source. nil means a deterministic stream
	// seeded from Seed (0 ⇒ defaultRNGSeed).
	Rand *rand.Rand

	// Seed is used only when Rand is nil.
	Seed int64

	// OnStep is called for every emitted word; step 0 is the start word.
	// Verses does not forward it.
	OnStep func(step int, word string)

	Recorder Recorder
	Logger   *slog.Logger

	err error
}

// DefaultOptions returns Options with a background context, the default
// seed, no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnStep:   func(int, string) {},
		Recorder: nopRecorder{},
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand provides an explicit RNG. *rand.Rand is not goroutine-safe;
// never share one between concurrent walks.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed selects a deterministic stream; ignored if WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOnStep registers a per-word callback.
func WithOnStep(fn func(step int, word string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithRecorder attaches a walk Recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithLogger routes per-walk debug lines to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over the defaults and resolves the RNG.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Rand == nil {
		o.Rand = rngFromSeed(o.Seed)
	}
	return o, nil
}
