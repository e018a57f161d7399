package bpe

// Encode tokenizes s to a sequence of token ids, optionally prefixed with
// the BOS id. It is a pure function of s and the loaded tables; it never
// fails. Allocates a fresh Scratch per call — callers doing this repeatedly
// on a hot path should use EncodeInto with a reused Scratch instead.
func (t *Tokenizer) Encode(s string, addBOS bool) []int32 {
	var scratch Scratch
	return t.EncodeInto(s, addBOS, nil, &scratch)
}

// EncodeInto is the destination-based variant of Encode: it appends ids to
// dst and reuses the caller-supplied scratch buffers across calls. dst and
// scratch must not be shared across concurrent callers; the Tokenizer
// itself holds no mutable state and may be shared freely.
func (t *Tokenizer) EncodeInto(s string, addBOS bool, dst []int32, scratch *Scratch) []int32 {
	if addBOS {
		dst = append(dst, t.specials.Bos)
	}
	if s == "" {
		return dst
	}

	for _, frag := range preTokenize(t.pretokenizer, s) {
		dst = t.reduceWord([]byte(frag), dst, scratch)
	}
	return dst
}
