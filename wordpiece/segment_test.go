package wordpiece

import (
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/stretchr/testify/require"
)

func newTestVocab(prefixes, continuations map[string]int32) *Vocabulary {
	v := &Vocabulary{
		prefixIndex:       orderedmap.New[string, int32](),
		continuationIndex: orderedmap.New[string, int32](),
	}
	store := func(text string, id int32, isPrefix bool) {
		for int(id) >= len(v.Pieces) {
			v.Pieces = append(v.Pieces, "")
			v.IsPrefix = append(v.IsPrefix, true)
		}
		v.Pieces[id] = text
		v.IsPrefix[id] = isPrefix
	}
	for text, id := range prefixes {
		v.prefixIndex.Set(text, id)
		store(text, id, true)
	}
	for text, id := range continuations {
		v.continuationIndex.Set(text, id)
		store(text, id, false)
	}
	return v
}

func TestSegmentWordSimple(t *testing.T) {
	vocab := newTestVocab(map[string]int32{"hello": 5}, nil)
	dst, n := segmentWord([]rune("hello"), vocab, 0, nil)
	require.Equal(t, 1, n)
	require.Equal(t, []int32{5}, dst)
}

func TestSegmentWordGreedySplit(t *testing.T) {
	vocab := newTestVocab(map[string]int32{"un": 10}, map[string]int32{"happy": 11})
	dst, n := segmentWord([]rune("unhappy"), vocab, 99, nil)
	require.Equal(t, 2, n)
	require.Equal(t, []int32{10, 11}, dst)
}

func TestSegmentWordRollbackOnFailure(t *testing.T) {
	vocab := newTestVocab(map[string]int32{"un": 10}, nil) // no "##happy"
	dst, n := segmentWord([]rune("unhappy"), vocab, 99, nil)
	require.Equal(t, 1, n)
	require.Equal(t, []int32{99}, dst)
}

func TestSegmentWordRollbackPreservesPriorWords(t *testing.T) {
	vocab := newTestVocab(map[string]int32{"un": 10, "ok": 7}, map[string]int32{"happy": 11})
	var ids []int32
	ids, _ = segmentWord([]rune("ok"), vocab, 99, ids)
	ids, n := segmentWord([]rune("unknown"), vocab, 99, ids)
	require.Equal(t, 1, n)
	require.Equal(t, []int32{7, 99}, ids)
}
