package bpe

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// defaultPattern is the GPT-2 pre-tokenizer pattern (spec 4.1), in priority
// order: contractions, then a leading-space-optional run of letters,
// digits, or other non-space characters, then trailing or plain whitespace.
// regexp2 supports both \p{L}/\p{N} Unicode classes and the (?!\S)
// lookahead natively, so unlike an RE2 engine this needs no rewriting.
const defaultPattern = `'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

func compilePretokenizer(pattern string) (*regexp2.Regexp, error) {
	if pattern == "" {
		pattern = defaultPattern
	}
	re, err := regexp2.Compile(pattern, regexp2.Unicode)
	if err != nil {
		return nil, fmt.Errorf("compile pretokenizer %q: %w", pattern, err)
	}
	return re, nil
}

// preTokenize segments s into word fragments per the compiled pattern,
// matching left to right without overlap. Text matched by none of the
// alternatives is skipped.
func preTokenize(re *regexp2.Regexp, s string) []string {
	if s == "" {
		return nil
	}

	var frags []string
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		frags = append(frags, m.String())
		m, err = re.FindNextMatch(m)
	}
	return frags
}
