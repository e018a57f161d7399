// Package wordpiece implements the WordPiece tokenizer used by BERT-family
// models: a greedy longest-match segmenter over Unicode code points that
// distinguishes word-initial (prefix) pieces from mid-word (continuation,
// "##"-prefixed on disk) pieces, falling back to an unknown-token id when no
// segmentation covers a word.
package wordpiece

import (
	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Specials holds the six named special-token id slots recognized by literal
// matching of a vocabulary line against its bracketed name. A slot that was
// never registered reads back as its zero value; this collides with a real
// vocabulary id and is preserved as-is rather than papered over with a
// sentinel (see spec design notes on unset specials).
type Specials struct {
	Unk, Pad, Sep, Bos, Eos, Cls int32
}

// Vocabulary is the immutable, loaded WordPiece vocabulary: id = line
// number, text with the "##" continuation marker stripped, and a prefix/
// continuation classification per id.
type Vocabulary struct {
	// Pieces holds the stored piece text (marker stripped) indexed by id.
	Pieces []string
	// IsPrefix[id] is true iff the entry is word-initial.
	IsPrefix []bool

	prefixIndex       *orderedmap.OrderedMap[string, int32]
	continuationIndex *orderedmap.OrderedMap[string, int32]
}

// Tokenizer is an immutable WordPiece tokenizer. It is safe for concurrent
// Encode calls; no mutable state lives on the tokenizer itself.
type Tokenizer struct {
	id       uuid.UUID
	vocab    *Vocabulary
	specials Specials

	// AddSpecialTokens controls whether EncodeIDs wraps output with
	// Cls ... Sep (spec 4.5); default on, matching the reference tokenizer.
	AddSpecialTokens bool
}

// ID returns the instance identifier stamped at load time.
func (t *Tokenizer) ID() uuid.UUID { return t.id }

// Specials returns the tokenizer's special-token id slots.
func (t *Tokenizer) Specials() Specials { return t.specials }

// Vocabulary returns the loaded vocabulary tables.
func (t *Tokenizer) Vocabulary() *Vocabulary { return t.vocab }
