package wordpiece

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func runesOf(words [][]rune) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = string(w)
	}
	return out
}

func TestSplitWhitespace(t *testing.T) {
	got := split([]rune("hello world"))
	require.Equal(t, []string{"hello", "world"}, runesOf(got))
}

func TestSplitPunctuationIsOwnWord(t *testing.T) {
	got := split([]rune("don't"))
	require.Equal(t, []string{"don", "'", "t"}, runesOf(got))
}

func TestSplitCJKSeparatesWithoutSpaces(t *testing.T) {
	got := split([]rune("a中b"))
	require.Equal(t, []string{"a", "中", "b"}, runesOf(got))
}

func TestSplitFlushesTrailingRun(t *testing.T) {
	got := split([]rune("  trailing"))
	require.Equal(t, []string{"trailing"}, runesOf(got))
}

func TestSplitEmpty(t *testing.T) {
	got := split([]rune(""))
	require.Empty(t, got)
}
