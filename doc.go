// Package lyricwalk turns a body of lyrics into a directed word-adjacency
// graph and writes new lines by walking it at random.
//
// What is lyricwalk?
//
//	A small, dependency-light toolkit that brings together:
//		• registry: dense, first-occurrence IDs for every distinct word
//		• matrix:   a packed, growable bit matrix (row = source, column = target)
//		• core:     the word graph, built from consecutive token pairs
//		• walk:     uniform random walks, single lines or whole verses
//		• lyrics:   normalization and tokenization of raw text
//		• metrics:  Prometheus counters for builds and walks
//		• config:   YAML + LYRICWALK_* environment configuration
//
// The lyricwalk command (cmd/lyricwalk) wires the packages into a CLI:
// generate, matrix, stats and version.
//
// Quick example:
//
//	"the cat sat the cat"
//
//	    the ──► cat ──► sat
//	     ▲               │
//	     └───────────────┘
//
//	the matrix, one row per word in first-occurrence order:
//
//	    010   the
//	    001   cat
//	    100   sat
//
// A walk starting at "the" with length 4 always yields "the cat sat the".
//
//	go install github.com/katalvlaran/lyricwalk/cmd/lyricwalk@latest
package lyricwalk
