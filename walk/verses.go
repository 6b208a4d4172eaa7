package walk

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Plan describes a batch of sentences.
//
// Sentence i has length MinLength + i % (MaxLength-MinLength+1), so
// Plan{Count: 5, MinLength: 5, MaxLength: 6} alternates 5,6,5,6,5.
type Plan struct {
	Count     int    // number of sentences, ≥ 1
	MinLength int    // ≥ 1
	MaxLength int    // ≥ MinLength
	Workers   int    // ≤ 1 means sequential
	Start     string // fixed start word; empty picks RandomStart per sentence
}

// DefaultPlan reproduces the classic five-line verse.
func DefaultPlan() Plan {
	return Plan{Count: 5, MinLength: 5, MaxLength: 6, Workers: 1}
}

// Validate reports the first inconsistency in p as ErrBadPlan.
func (p Plan) Validate() error {
	switch {
	case p.Count < 1:
		return fmt.Errorf("%w: count %d < 1", ErrBadPlan, p.Count)
	case p.MinLength < 1:
		return fmt.Errorf("%w: min length %d < 1", ErrBadPlan, p.MinLength)
	case p.MaxLength < p.MinLength:
		return fmt.Errorf("%w: max length %d < min length %d", ErrBadPlan, p.MaxLength, p.MinLength)
	}
	return nil
}

// lengthAt returns the target length of sentence i.
func (p Plan) lengthAt(i int) int {
	return p.MinLength + i%(p.MaxLength-p.MinLength+1)
}

// Verses generates p.Count sentences from g.
//
// Sentence i walks its own stream, keyed by one draw from the base stream
// (WithRand/WithSeed) and by i, so the output is identical for any worker count.
// With Workers > 1 sentences run concurrently; g must not be mutated meanwhile.
// The first error cancels the remaining work and is returned.
func Verses(g Graph, p Plan, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if p.Start == "" && g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	key := verseKey(o.Rand)

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, p.Count)
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(workers)
	for i := 0; i < p.Count; i++ {
		eg.Go(func() error {
			rng := verseRNG(key, i)
			start := p.Start
			if start == "" {
				s, err := RandomStart(g, rng)
				if err != nil {
					return err
				}
				start = s
			}
			res, err := Sentence(g, start, p.lengthAt(i),
				WithRand(rng),
				WithContext(ctx),
				WithRecorder(o.Recorder),
				WithLogger(o.Logger),
			)
			if err != nil {
				return fmt.Errorf("verse %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	o.Logger.Debug("verses generated", slog.Int("count", p.Count), slog.Int("workers", workers))

	return results, nil
}
