// Package lyrics turns raw song text into the normalised token stream that
// core.Build consumes: lowercase, punctuation-free words split on whitespace.
package lyrics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrNoTokens is returned when the input holds no words after normalisation.
var ErrNoTokens = errors.New("lyrics: no tokens in input")

// DefaultPath is the lyrics file read when no path is given.
const DefaultPath = "lyrics.txt"

// keep reports whether r survives normalisation: word characters
// (letters, marks, digits, connector punctuation such as '_') and whitespace.
func keep(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Pc, r) || unicode.IsSpace(r)
}

// Normalize lowercases text and drops every rune that is neither a word
// character nor whitespace. "Don't stop!" becomes "dont stop".
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if !keep(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, text)
}

// Tokenize normalises text and splits it on any whitespace, line breaks
// included, so the last word of a line and the first of the next stay apart.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// Read tokenizes everything readable from r.
func Read(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lyrics: read: %w", err)
	}
	tokens := Tokenize(string(data))
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	return tokens, nil
}

// ReadFile tokenizes the file at path; an empty path means DefaultPath.
func ReadFile(path string) ([]string, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lyrics: open %s: %w", path, err)
	}
	defer f.Close()

	tokens, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tokens, nil
}
