package bpe

import "github.com/emirpasic/gods/v2/maps/treemap"

// MergeRule is one (first, second) -> result merge rule at a given priority.
type MergeRule struct {
	Priority      int32
	First, Second int32
	Result        int32
}

// DumpMerges returns every loaded merge rule ordered by ascending priority
// (earliest-applied first), for diagnostics and the CLI's --dump-merges output. It
// does not affect encoding, which always re-derives priority order by
// scanning the table (see spec's scan-based monotone-priority contract).
func (t *Tokenizer) DumpMerges() []MergeRule {
	ordered := treemap.New[int32, MergeRule]()
	for key, entry := range t.merges.entries {
		first := int32(key >> 32)
		second := int32(uint32(key))
		ordered.Put(entry.priority, MergeRule{
			Priority: entry.priority,
			First:    first,
			Second:   second,
			Result:   entry.result,
		})
	}

	rules := make([]MergeRule, 0, ordered.Size())
	for _, priority := range ordered.Keys() {
		rule, _ := ordered.Get(priority)
		rules = append(rules, rule)
	}
	return rules
}
