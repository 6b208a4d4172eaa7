package lyrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lyricwalk/lyrics"
	"github.com/stretchr/testify/require"
)

// TestTokenize_TableDriven covers case folding, punctuation and whitespace.
func TestTokenize_TableDriven(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Lowercase", "Hello WORLD", []string{"hello", "world"}},
		{"Punctuation", "Don't stop, me now!", []string{"dont", "stop", "me", "now"}},
		{"LineBreaks", "end of line\nstart of next\r\n", []string{"end", "of", "line", "start", "of", "next"}},
		{"Tabs", "a\tb  c", []string{"a", "b", "c"}},
		{"DigitsUnderscore", "route_66 in 1999", []string{"route_66", "in", "1999"}},
		{"Unicode", "Ça va? Über-alles", []string{"ça", "va", "überalles"}},
		{"OnlyPunctuation", "?! ... --", []string{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := lyrics.Tokenize(tc.in)
			if len(tc.want) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}

// TestNormalize keeps whitespace intact.
func TestNormalize(t *testing.T) {
	t.Parallel()
	require.Equal(t, "la la\nland", lyrics.Normalize("La, la!\nLAND."))
}

// TestRead_NoTokens reports ErrNoTokens for empty input.
func TestRead_NoTokens(t *testing.T) {
	t.Parallel()
	_, err := lyrics.Read(strings.NewReader("  \n!!"))
	require.ErrorIs(t, err, lyrics.ErrNoTokens)

	tokens, err := lyrics.Read(strings.NewReader("One more time"))
	require.NoError(t, err)
	require.Equal(t, []string{"one", "more", "time"}, tokens)
}

// TestReadFile covers success and a missing file.
func TestReadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "song.txt")
	require.NoError(t, os.WriteFile(path, []byte("Let it be,\nlet it BE."), 0o600))

	tokens, err := lyrics.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"let", "it", "be", "let", "it", "be"}, tokens)

	_, err = lyrics.ReadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = lyrics.ReadFile(empty)
	require.ErrorIs(t, err, lyrics.ErrNoTokens)
}
