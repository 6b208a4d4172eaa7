// Command lyricwalk builds a word-adjacency graph from a lyrics file and
// prints new lines generated by random walks over it.
//
//	lyricwalk generate lyrics.txt --count 5 --min-length 5 --max-length 6
//	lyricwalk matrix lyrics.txt
//	lyricwalk stats lyrics.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lyricwalk:", err)
		stop()
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
