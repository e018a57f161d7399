package wordpiece

import "unicode"

// split segments text into non-empty word spans (spec's WP.Splitter):
// whitespace terminates a pending run and produces no span of its own;
// punctuation or CJK terminates any pending run and then emits itself as a
// single-code-point span; anything else extends the pending run. A pending
// run is flushed at end of input.
func split(text []rune) [][]rune {
	var words [][]rune
	start := 0

	flush := func(end int) {
		if end > start {
			words = append(words, text[start:end])
		}
	}

	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush(i)
			start = i + 1
		case unicode.IsPunct(r) || isCJK(r):
			flush(i)
			words = append(words, text[i:i+1])
			start = i + 1
		}
	}
	flush(len(text))

	return words
}
