package bpe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Load reads the three side files for a byte-level BPE model —
// <prefix>.merges, <prefix>.bytes, <prefix>.specials — and constructs an
// immutable Tokenizer using the default GPT-2 pre-tokenizer pattern.
func Load(prefix string) (*Tokenizer, error) {
	return LoadWithPattern(prefix, "")
}

// LoadWithPattern is Load with an explicit pre-tokenizer regex (spec 4.1);
// an empty pattern falls back to the GPT-2 default.
func LoadWithPattern(prefix, pattern string) (*Tokenizer, error) {
	mergesFile, err := os.Open(prefix + ".merges")
	if err != nil {
		return nil, &LoadError{Op: "open", Path: prefix + ".merges", Err: err}
	}
	defer mergesFile.Close()

	bytesFile, err := os.Open(prefix + ".bytes")
	if err != nil {
		return nil, &LoadError{Op: "open", Path: prefix + ".bytes", Err: err}
	}
	defer bytesFile.Close()

	specialsFile, err := os.Open(prefix + ".specials")
	if err != nil {
		return nil, &LoadError{Op: "open", Path: prefix + ".specials", Err: err}
	}
	defer specialsFile.Close()

	merges, err := loadMerges(mergesFile)
	if err != nil {
		return nil, &LoadError{Op: "parse", Path: prefix + ".merges", Err: err}
	}

	seeds, err := loadByteSeeds(bytesFile)
	if err != nil {
		return nil, &LoadError{Op: "parse", Path: prefix + ".bytes", Err: err}
	}

	specials, err := loadSpecials(specialsFile)
	if err != nil {
		return nil, &LoadError{Op: "parse", Path: prefix + ".specials", Err: err}
	}

	re, err := compilePretokenizer(pattern)
	if err != nil {
		return nil, &LoadError{Op: "compile pretokenizer", Err: err}
	}

	return &Tokenizer{
		id:           uuid.New(),
		seeds:        seeds,
		merges:       merges,
		specials:     specials,
		pretokenizer: re,
	}, nil
}

// loadMerges parses whitespace-separated "first second result" triples, one
// per line; the 0-based line index is the merge priority. Blank lines are
// skipped and do not consume a priority.
func loadMerges(r io.Reader) (MergeTable, error) {
	table := MergeTable{entries: make(map[pairKey]mergeEntry)}

	sc := bufio.NewScanner(r)
	priority := int32(0)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return MergeTable{}, fmt.Errorf("%w: line %d: want 3 fields, got %d", ErrMalformedLine, priority, len(fields))
		}

		first, err1 := strconv.ParseInt(fields[0], 10, 32)
		second, err2 := strconv.ParseInt(fields[1], 10, 32)
		result, err3 := strconv.ParseInt(fields[2], 10, 32)
		if err1 != nil || err2 != nil || err3 != nil {
			return MergeTable{}, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, priority, line)
		}

		table.entries[makePairKey(int32(first), int32(second))] = mergeEntry{
			priority: priority,
			result:   int32(result),
		}
		priority++
	}
	if err := sc.Err(); err != nil {
		return MergeTable{}, err
	}
	return table, nil
}

// loadByteSeeds parses 256 whitespace-separated integers in byte-index
// order, regardless of how they're split across lines.
func loadByteSeeds(r io.Reader) (ByteSeeds, error) {
	var seeds ByteSeeds

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for i := 0; i < 256; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return seeds, err
			}
			return seeds, fmt.Errorf("%w: expected 256 byte seeds, got %d", ErrMalformedLine, i)
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 32)
		if err != nil {
			return seeds, fmt.Errorf("%w: byte %d: %q", ErrMalformedLine, i, sc.Text())
		}
		seeds[i] = int32(v)
	}
	return seeds, nil
}

// loadSpecials parses "NAME id" lines. NAME must be one of PAD, BOS, EOS,
// UNK, MASK; anything else is a fatal load error.
func loadSpecials(r io.Reader) (Specials, error) {
	var s Specials

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return Specials{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		id, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return Specials{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		switch fields[0] {
		case "PAD":
			s.Pad = int32(id)
		case "BOS":
			s.Bos = int32(id)
		case "EOS":
			s.Eos = int32(id)
		case "UNK":
			s.Unk = int32(id)
		case "MASK":
			s.Mask = int32(id)
		default:
			return Specials{}, fmt.Errorf("%w: %q", ErrUnknownSpecialName, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return Specials{}, err
	}
	return s, nil
}
