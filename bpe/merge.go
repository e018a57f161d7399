package bpe

// Scratch holds the per-call working buffers for the merge engine (spec's W
// and P). Reuse one Scratch across repeated Encode calls on the same
// goroutine to avoid allocating on every call; never share a Scratch
// between concurrent callers.
type Scratch struct {
	w []int32
	p []mergeEntry
}

// reduceWord is the BPE.MergeEngine core: repeatedly merge the
// lowest-priority adjacent pair in the word until none apply, then append
// the resulting ids to dst. A zero-length fragment appends nothing.
//
// The invariant |P| == max(0, |W|-1), with P[i] the merge lookup for
// (W[i], W[i+1]), holds at every loop boundary; ties on minimum priority
// are broken by leftmost index.
func (t *Tokenizer) reduceWord(fragment []byte, dst []int32, s *Scratch) []int32 {
	if len(fragment) == 0 {
		return dst
	}

	w := s.w[:0]
	for i := 0; i < len(fragment); i++ {
		w = append(w, t.seeds.idFor(fragment[i]))
	}

	p := s.p[:0]
	for i := 0; i < len(w)-1; i++ {
		p = append(p, t.merges.lookup(w[i], w[i+1]))
	}

	for len(p) > 0 {
		best := 0
		for i := 1; i < len(p); i++ {
			if p[i].priority < p[best].priority {
				best = i
			}
		}
		if p[best].result < 0 {
			break
		}

		w[best] = p[best].result
		w = append(w[:best+1], w[best+2:]...)

		if best+1 < len(p) {
			p = append(p[:best+1], p[best+2:]...)
			p[best] = t.merges.lookup(w[best], w[best+1])
		} else {
			p = p[:best]
		}
		if best > 0 {
			p[best-1] = t.merges.lookup(w[best-1], w[best])
		}
	}

	dst = append(dst, w...)
	s.w, s.p = w, p
	return dst
}
