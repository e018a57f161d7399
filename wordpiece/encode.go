package wordpiece

// EncodeIDs tokenizes text into a sequence of vocabulary ids. It is a pure
// function of text and the loaded vocabulary; it never fails — an
// un-segmentable word yields exactly one Unk id. When t.AddSpecialTokens is
// set, the first emitted id is Cls and the last is Sep.
func (t *Tokenizer) EncodeIDs(text string) []int32 {
	words := split([]rune(text))

	var ids []int32
	if t.AddSpecialTokens {
		ids = append(ids, t.specials.Cls)
	}

	for _, word := range words {
		ids, _ = segmentWord(word, t.vocab, t.specials.Unk, ids)
	}

	if t.AddSpecialTokens {
		ids = append(ids, t.specials.Sep)
	}

	return ids
}

// EncodePieces is EncodeIDs but returns each emitted piece's stored text,
// re-prefixed with "##" for continuation pieces (spec 4.6). Special tokens
// inserted by AddSpecialTokens are included as their stored piece text.
func (t *Tokenizer) EncodePieces(text string) []string {
	ids := t.EncodeIDs(text)

	pieces := make([]string, 0, len(ids))
	for _, id := range ids {
		pieces = append(pieces, t.pieceFor(id))
	}
	return pieces
}

func (t *Tokenizer) pieceFor(id int32) string {
	if int(id) < 0 || int(id) >= len(t.vocab.Pieces) {
		return ""
	}
	if t.vocab.IsPrefix[id] {
		return t.vocab.Pieces[id]
	}
	return "##" + t.vocab.Pieces[id]
}
