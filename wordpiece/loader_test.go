package wordpiece

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeVocab(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadClassifiesPrefixAndContinuation(t *testing.T) {
	path := writeVocab(t, "[PAD]", "[UNK]", "hello", "##lo", "world")
	tok, err := Load(path)
	require.NoError(t, err)

	v := tok.Vocabulary()
	require.Equal(t, []string{"[PAD]", "[UNK]", "hello", "lo", "world"}, v.Pieces)
	require.Equal(t, []bool{true, true, true, false, true}, v.IsPrefix)
}

func TestLoadRegistersSpecialsBeforeStripping(t *testing.T) {
	path := writeVocab(t, "[PAD]", "[UNK]", "[CLS]", "[SEP]", "[BOS]", "[EOS]", "hi")
	tok, err := Load(path)
	require.NoError(t, err)

	s := tok.Specials()
	require.Equal(t, int32(0), s.Pad)
	require.Equal(t, int32(1), s.Unk)
	require.Equal(t, int32(2), s.Cls)
	require.Equal(t, int32(3), s.Sep)
	require.Equal(t, int32(4), s.Bos)
	require.Equal(t, int32(5), s.Eos)
}

func TestLoadUnregisteredSpecialDecaysToZero(t *testing.T) {
	path := writeVocab(t, "hello", "world")
	tok, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, int32(0), tok.Specials().Unk)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/vocab.txt")
	require.Error(t, err)
}

func TestLoadShortHashHashLineIsPrefix(t *testing.T) {
	// "##" alone (length 2) does not qualify as a continuation per spec 4.6
	// ("length > 2"); it is stored as a literal two-character prefix piece.
	path := writeVocab(t, "##")
	tok, err := Load(path)
	require.NoError(t, err)

	v := tok.Vocabulary()
	require.Equal(t, []string{"##"}, v.Pieces)
	require.Equal(t, []bool{true}, v.IsPrefix)
}
