package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lyricwalk/core"
)

// =============================================================================
// MATRIX COMMAND
// =============================================================================

func newMatrixCmd(a *app) *cobra.Command {
	var labels bool
	cmd := &cobra.Command{
		Use:   "matrix [lyrics-file]",
		Short: "Print the adjacency matrix (row = word, column = following word)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, _ []string) error {
			g, _, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.printMatrix(g, labels)
		},
	}
	cmd.Flags().BoolVar(&labels, "labels", false, "suffix every row with its word")

	return cmd
}

// printMatrix writes one 0/1 row per vertex in first-occurrence order.
func (a *app) printMatrix(g *core.Graph, labels bool) error {
	words := g.Vertices()
	rows := strings.Split(strings.TrimSuffix(g.Matrix(), "\n"), "\n")
	if len(words) == 0 {
		return nil
	}
	var sb strings.Builder
	for i, row := range rows {
		if a.styled {
			for _, c := range row {
				if c == '1' {
					sb.WriteString(oneStyle.Render("1"))
				} else {
					sb.WriteString(zeroStyle.Render("0"))
				}
			}
		} else {
			sb.WriteString(row)
		}
		if labels {
			sb.WriteString("  ")
			sb.WriteString(a.paint(labelStyle, words[i]))
		}
		sb.WriteByte('\n')
	}
	_, err := fmt.Fprint(a.out, sb.String())
	return err
}

// =============================================================================
// STATS COMMAND
// =============================================================================

// statsJSON is the --json shape of the stats command.
type statsJSON struct {
	Tokens       int      `json:"tokens"`
	Vertices     int      `json:"vertices"`
	Edges        int      `json:"edges"`
	SelfLoops    int      `json:"self_loops"`
	MaxOutDegree int      `json:"max_out_degree"`
	DeadEnds     []string `json:"dead_ends"`
}

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats [lyrics-file]",
		Short: "Print graph size, self-loops and dead-end words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, _ []string) error {
			g, rep, err := a.loadGraph()
			if err != nil {
				return err
			}
			st := g.Stats()
			dead := g.DeadEnds()
			if dead == nil {
				dead = []string{}
			}
			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(statsJSON{
					Tokens:       rep.Tokens,
					Vertices:     st.Vertices,
					Edges:        st.Edges,
					SelfLoops:    st.SelfLoops,
					MaxOutDegree: st.MaxOutDegree,
					DeadEnds:     dead,
				})
			}
			label := func(s string) string { return a.paint(labelStyle, s) }
			_, err = fmt.Fprintf(a.out,
				"%s %d\n%s %d\n%s %d\n%s %d\n%s %d\n%s %s\n",
				label("tokens:"), rep.Tokens,
				label("vertices:"), st.Vertices,
				label("edges:"), st.Edges,
				label("self-loops:"), st.SelfLoops,
				label("max out-degree:"), st.MaxOutDegree,
				label("dead ends:"), strings.Join(dead, " "),
			)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print stats as JSON")

	return cmd
}
