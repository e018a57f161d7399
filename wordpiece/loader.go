package wordpiece

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// specialNames maps a vocabulary line's literal bracketed form to the
// Specials field it registers (spec 4.6 and 3.2). Matching happens against
// the raw, unstripped line, before the "##" continuation test runs, so
// "[UNK]" is simultaneously a registered special and an ordinary prefix
// vocabulary entry occupying one id.
var specialNames = map[string]func(*Specials, int32){
	"[UNK]": func(s *Specials, id int32) { s.Unk = id },
	"[PAD]": func(s *Specials, id int32) { s.Pad = id },
	"[SEP]": func(s *Specials, id int32) { s.Sep = id },
	"[BOS]": func(s *Specials, id int32) { s.Bos = id },
	"[EOS]": func(s *Specials, id int32) { s.Eos = id },
	"[CLS]": func(s *Specials, id int32) { s.Cls = id },
}

// Load reads a line-oriented WordPiece vocabulary file: id = line number,
// entries beginning with "##" and longer than two bytes are continuation
// pieces, everything else (including a bare "##") is a prefix piece. add_special_tokens defaults to on, matching the reference
// tokenizer.
func Load(path string) (*Tokenizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	vocab, specials, err := loadVocabulary(f)
	if err != nil {
		return nil, &LoadError{Op: "parse", Path: path, Err: err}
	}

	return &Tokenizer{
		id:               uuid.New(),
		vocab:            vocab,
		specials:         specials,
		AddSpecialTokens: true,
	}, nil
}

func loadVocabulary(r *os.File) (*Vocabulary, Specials, error) {
	var specials Specials
	vocab := &Vocabulary{
		prefixIndex:       orderedmap.New[string, int32](),
		continuationIndex: orderedmap.New[string, int32](),
	}

	sc := bufio.NewScanner(r)
	// Vocabulary pieces can be long (some WordPiece entries are whole
	// sentences in CJK models); grow past bufio's 64KiB default token cap.
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	id := int32(0)
	for sc.Scan() {
		line := sc.Text()

		if set, ok := specialNames[line]; ok {
			set(&specials, id)
		}

		isPrefix := true
		piece := line
		if len(line) > 2 && strings.HasPrefix(line, "##") {
			isPrefix = false
			piece = line[2:]
		}

		vocab.Pieces = append(vocab.Pieces, piece)
		vocab.IsPrefix = append(vocab.IsPrefix, isPrefix)
		if isPrefix {
			vocab.prefixIndex.Set(piece, id)
		} else {
			vocab.continuationIndex.Set(piece, id)
		}

		id++
	}
	if err := sc.Err(); err != nil {
		return nil, Specials{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return vocab, specials, nil
}
