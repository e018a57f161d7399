// Package bpe implements byte-level Byte-Pair Encoding: the GPT-family
// tokenizer that reduces the raw UTF-8 bytes of a pre-tokenized word to a
// minimal sequence of subword ids by repeatedly applying the
// lowest-priority applicable merge.
package bpe

import (
	"math"

	"github.com/dlclark/regexp2"
	"github.com/google/uuid"
)

const (
	sentinelPriority = int32(math.MaxInt32)
	sentinelResult   = int32(-1)
)

// ByteSeeds maps every possible input byte (0..255) to its initial token id.
// Every byte is representable; there is no unmapped byte.
type ByteSeeds [256]int32

func (b *ByteSeeds) idFor(c byte) int32 { return b[c] }

// pairKey packs an ordered pair of token ids into one 64-bit map key.
// (a, b) and (b, a) are distinct keys.
type pairKey uint64

func makePairKey(first, second int32) pairKey {
	return pairKey(uint32(first))<<32 | pairKey(uint32(second))
}

type mergeEntry struct {
	priority int32
	result   int32
}

var sentinelEntry = mergeEntry{priority: sentinelPriority, result: sentinelResult}

// MergeTable is the learned set of merge rules: (first, second) -> {priority, result}.
// Priorities are unique and dense over [0, M).
type MergeTable struct {
	entries map[pairKey]mergeEntry
}

func (m *MergeTable) lookup(first, second int32) mergeEntry {
	if e, ok := m.entries[makePairKey(first, second)]; ok {
		return e
	}
	return sentinelEntry
}

// Len reports the number of loaded merge rules.
func (m *MergeTable) Len() int { return len(m.entries) }

// Specials holds the five optional special-token id slots from a .specials
// file. A slot that wasn't listed reads back as its zero value; the loader
// preserves this collision with a real vocabulary id rather than inventing
// a sentinel (see spec design notes on unset specials).
type Specials struct {
	Pad, Bos, Eos, Unk, Mask int32
}

// Tokenizer is an immutable byte-level BPE tokenizer. It is safe for
// concurrent Encode calls as long as each caller supplies its own Scratch;
// the Tokenizer itself holds no mutable state.
type Tokenizer struct {
	id           uuid.UUID
	seeds        ByteSeeds
	merges       MergeTable
	specials     Specials
	pretokenizer *regexp2.Regexp
}

// ID returns the instance identifier stamped at load time, useful for
// correlating log lines when more than one tokenizer is loaded in process.
func (t *Tokenizer) ID() uuid.UUID { return t.id }

// Specials returns the tokenizer's special-token id slots.
func (t *Tokenizer) Specials() Specials { return t.specials }

// NumMerges reports how many merge rules were loaded.
func (t *Tokenizer) NumMerges() int { return t.merges.Len() }
