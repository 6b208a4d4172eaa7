package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lyricwalk/config"
	"github.com/katalvlaran/lyricwalk/core"
	"github.com/katalvlaran/lyricwalk/lyrics"
	"github.com/katalvlaran/lyricwalk/metrics"
)

// app carries the state resolved once per invocation.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	rec    *metrics.Recorder
	out    io.Writer
	styled bool

	gen *generateFlags // bound by newGenerateCmd
}

// loadGraph reads the configured input and builds a fresh graph from it.
func (a *app) loadGraph() (*core.Graph, core.BuildReport, error) {
	start := time.Now()
	tokens, err := lyrics.ReadFile(a.cfg.Input)
	if err != nil {
		return nil, core.BuildReport{}, err
	}
	g, rep, err := core.FromTokens(tokens,
		core.WithLogger(a.logger),
		core.WithRecorder(a.rec),
	)
	if err != nil {
		return nil, rep, err
	}
	a.rec.SetGraphShape(g.VertexCount(), g.EdgeCount())
	a.logger.Info("lyrics loaded",
		slog.String("path", a.cfg.Input),
		slog.Int("tokens", rep.Tokens),
		slog.Int("vertices", g.VertexCount()),
		slog.Duration("latency", time.Since(start)),
	)

	return g, rep, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Console styles, applied only when stdout is a terminal.
var (
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	shortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	oneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	zeroStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// paint renders s with st when styling is on.
func (a *app) paint(st lipgloss.Style, s string) string {
	if !a.styled {
		return s
	}
	return st.Render(s)
}
