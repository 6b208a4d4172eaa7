package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lyricwalk/config"
	"github.com/katalvlaran/lyricwalk/internal/logging"
	"github.com/katalvlaran/lyricwalk/metrics"
)

// =============================================================================
// ROOT COMMAND
// =============================================================================

// globalFlags are bound to persistent flags on the root command.
type globalFlags struct {
	configPath  string
	logLevel    string
	logFormat   string
	metricsAddr string
}

// newRootCmd assembles a fresh command tree. Each call returns independent
// state, so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{}
	var gf globalFlags

	root := &cobra.Command{
		Use:           "lyricwalk",
		Short:         "Generate lyric lines by random walks over a word-adjacency graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, args, gf)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "YAML config file")
	pf.StringVar(&gf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&gf.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&gf.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this host:port while watching")

	root.AddCommand(
		newGenerateCmd(a),
		newMatrixCmd(a),
		newStatsCmd(a),
		newVersionCmd(),
	)

	return root
}

// init resolves configuration (defaults → file → env → flags) and sets up
// the logger and metrics recorder shared by all subcommands.
func (a *app) init(cmd *cobra.Command, args []string, gf globalFlags) error {
	cfg, err := config.Load(gf.configPath)
	if err != nil {
		return err
	}
	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = gf.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = gf.logFormat
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = gf.metricsAddr
	}
	a.applyGenerateFlags(cmd, &cfg)
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	cfg.Normalize()
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.out = cmd.OutOrStdout()
	a.styled = isTerminal(a.out)
	a.rec = metrics.NewRecorder()
	a.logger, err = logging.New(cmd.ErrOrStderr(), logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Attrs:  []slog.Attr{slog.String("run_id", uuid.NewString())},
	})
	if err != nil {
		return err
	}
	a.logger.Debug("configuration resolved",
		slog.String("input", cfg.Input),
		slog.Int("count", cfg.Count),
		slog.Int("workers", cfg.Workers),
		slog.Int64("seed", cfg.Seed),
	)

	return nil
}

// =============================================================================
// VERSION COMMAND
// =============================================================================

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lyricwalk version",
		Args:  cobra.NoArgs,
		// version needs no config
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "lyricwalk "+version+"\n")
			return err
		},
	}
}
