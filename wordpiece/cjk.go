package wordpiece

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

func span16(lo, hi uint16) *unicode.RangeTable {
	return &unicode.RangeTable{R16: []unicode.Range16{{Lo: lo, Hi: hi, Stride: 1}}}
}

func span32(lo, hi uint32) *unicode.RangeTable {
	return &unicode.RangeTable{R32: []unicode.Range32{{Lo: lo, Hi: hi, Stride: 1}}}
}

// cjkTable merges the eight closed code-point ranges classified as CJK
// (spec 4.4.1). Each code point in this table is treated as its own
// one-character word by the splitter, whether or not it's surrounded by
// whitespace.
var cjkTable = rangetable.Merge(
	span16(0x3400, 0x4DBF),
	span16(0x4E00, 0x9FFF),
	span16(0xF900, 0xFAFF),
	span32(0x20000, 0x2A6DF),
	span32(0x2A700, 0x2B73F),
	span32(0x2B740, 0x2B81F),
	span32(0x2B820, 0x2CEAF),
	span32(0x2F800, 0x2FA1F),
)

// isCJK reports whether r falls in one of the eight CJK ranges.
func isCJK(r rune) bool {
	return unicode.Is(cjkTable, r)
}
