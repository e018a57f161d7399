package wordpiece

// segmentWord runs the greedy longest-match segmenter (spec's WP.Segmenter)
// over one word and appends the resulting ids to dst. On success it returns
// the number of pieces committed; on failure (no segmentation covers the
// word) it rolls back any ids already appended for this word, appends
// unkID exactly once, and returns 1.
func segmentWord(word []rune, vocab *Vocabulary, unkID int32, dst []int32) ([]int32, int) {
	start := 0
	numEncoded := 0
	base := len(dst)

	for start < len(word) {
		index := vocab.prefixIndex
		if numEncoded > 0 {
			index = vocab.continuationIndex
		}

		tokenEnd := len(word)
		found := false
		for start < tokenEnd {
			if id, ok := index.Get(string(word[start:tokenEnd])); ok {
				dst = append(dst, id)
				start = tokenEnd
				numEncoded++
				found = true
				break
			}
			tokenEnd--
		}

		if !found {
			dst = dst[:base]
			dst = append(dst, unkID)
			return dst, 1
		}
	}

	return dst, numEncoded
}
