package bpe

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeAssets builds a minimal .merges/.bytes/.specials trio under t.TempDir()
// and returns the shared prefix, suitable for Load.
func writeAssets(t *testing.T, merges string, seeds [256]int32, specials string) string {
	t.Helper()
	dir := t.TempDir()
	prefix := filepath.Join(dir, "model")

	require.NoError(t, os.WriteFile(prefix+".merges", []byte(merges), 0o644))

	var sb strings.Builder
	for i, v := range seeds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
	require.NoError(t, os.WriteFile(prefix+".bytes", []byte(sb.String()), 0o644))
	require.NoError(t, os.WriteFile(prefix+".specials", []byte(specials), 0o644))

	return prefix
}

func TestEncodeEmptyInput(t *testing.T) {
	var seeds [256]int32
	for i := range seeds {
		seeds[i] = int32(i)
	}
	prefix := writeAssets(t, "", seeds, "")
	tok, err := Load(prefix)
	require.NoError(t, err)

	got := tok.Encode("", false)
	require.Empty(t, got)
}

func TestEncodeSingleASCIILetter(t *testing.T) {
	var seeds [256]int32
	for i := range seeds {
		seeds[i] = int32(i)
	}
	seeds['a'] = 65
	prefix := writeAssets(t, "", seeds, "")
	tok, err := Load(prefix)
	require.NoError(t, err)

	got := tok.Encode("a", false)
	require.Equal(t, []int32{65}, got)
}

func TestEncodeMergeChainEndToEnd(t *testing.T) {
	var seeds [256]int32
	for i := range seeds {
		seeds[i] = int32(i)
	}
	seeds['h'] = 72
	seeds['e'] = 69
	prefix := writeAssets(t, "72 69 257\n", seeds, "")
	tok, err := Load(prefix)
	require.NoError(t, err)

	got := tok.Encode("he", false)
	require.Equal(t, []int32{257}, got)
}

func TestEncodeWithBOS(t *testing.T) {
	var seeds [256]int32
	for i := range seeds {
		seeds[i] = int32(i)
	}
	prefix := writeAssets(t, "", seeds, "BOS 1\n")
	tok, err := Load(prefix)
	require.NoError(t, err)

	got := tok.Encode("", true)
	require.Equal(t, []int32{1}, got)
}

func TestEncodeIntoReusesScratch(t *testing.T) {
	var seeds [256]int32
	for i := range seeds {
		seeds[i] = int32(i)
	}
	prefix := writeAssets(t, "", seeds, "")
	tok, err := Load(prefix)
	require.NoError(t, err)

	var scratch Scratch
	first := tok.EncodeInto("ab", false, nil, &scratch)
	require.Len(t, first, 2)

	var dst []int32
	dst = tok.EncodeInto("cd", false, dst, &scratch)
	require.Len(t, dst, 2)
}
