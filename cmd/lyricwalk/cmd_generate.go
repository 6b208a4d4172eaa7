package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lyricwalk/config"
	"github.com/katalvlaran/lyricwalk/core"
	"github.com/katalvlaran/lyricwalk/walk"
)

// =============================================================================
// GENERATE COMMAND
// =============================================================================

// generateFlags are bound to the generate subcommand.
type generateFlags struct {
	count     int
	minLength int
	maxLength int
	seed      int64
	workers   int
	start     string
	watch     bool
	json      bool
}

func newGenerateCmd(a *app) *cobra.Command {
	gf := &generateFlags{}
	a.gen = gf
	cmd := &cobra.Command{
		Use:   "generate [lyrics-file]",
		Short: "Build the word graph and print generated lines",
		Long: "Reads the lyrics file (default lyrics.txt), builds the word-adjacency graph\n" +
			"and prints --count lines whose lengths cycle from --min-length to --max-length.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if gf.watch {
				return a.watch(cmd.Context(), gf.json)
			}
			g, _, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.generate(cmd.Context(), g, gf.json)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&gf.count, "count", "n", 0, "number of lines (default from config: 5)")
	f.IntVar(&gf.minLength, "min-length", 0, "shortest line length in words (default 5)")
	f.IntVar(&gf.maxLength, "max-length", 0, "longest line length in words (default 6)")
	f.Int64Var(&gf.seed, "seed", 0, "random seed; 0 uses the fixed default stream")
	f.IntVarP(&gf.workers, "workers", "w", 0, "parallel generation workers")
	f.StringVar(&gf.start, "start", "", "start every line from this word")
	f.BoolVar(&gf.watch, "watch", false, "rebuild and regenerate when the lyrics file changes")
	f.BoolVar(&gf.json, "json", false, "print lines as JSON")

	return cmd
}

// applyGenerateFlags copies explicitly set generate flags into cfg.
func (a *app) applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	gf := a.gen
	if gf == nil || cmd.Name() != "generate" {
		return
	}
	f := cmd.Flags()
	if f.Changed("count") {
		cfg.Count = gf.count
	}
	if f.Changed("min-length") {
		cfg.MinLength = gf.minLength
	}
	if f.Changed("max-length") {
		cfg.MaxLength = gf.maxLength
	}
	if f.Changed("seed") {
		cfg.Seed = gf.seed
	}
	if f.Changed("workers") {
		cfg.Workers = gf.workers
	}
	if f.Changed("start") {
		cfg.Start = gf.start
	}
}

// verseJSON is the --json line shape.
type verseJSON struct {
	Words  []string `json:"words"`
	Stop   string   `json:"stop"`
	Target int      `json:"target"`
}

// generate runs the configured plan on g and prints the lines.
func (a *app) generate(ctx context.Context, g *core.Graph, asJSON bool) error {
	results, err := walk.Verses(g, a.cfg.Plan(),
		walk.WithContext(ctx),
		walk.WithSeed(a.cfg.Seed),
		walk.WithRecorder(a.rec),
		walk.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	short := 0
	for _, r := range results {
		if r.Stop != walk.StopComplete {
			short++
		}
	}
	if short > 0 {
		a.logger.Info("some lines ended early", slog.Int("lines", short))
	}

	if asJSON {
		out := make([]verseJSON, len(results))
		for i, r := range results {
			out[i] = verseJSON{Words: r.Words, Stop: r.Stop.String(), Target: r.Target}
		}
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, r := range results {
		line := strings.Join(r.Words, " ")
		if r.Stop == walk.StopComplete {
			line = a.paint(lineStyle, line)
		} else {
			line = a.paint(shortStyle, line)
		}
		if _, err = fmt.Fprintln(a.out, line); err != nil {
			return err
		}
	}
	return nil
}
