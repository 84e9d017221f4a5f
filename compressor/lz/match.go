package lz

// Match is the best backward reference found at one position. Length 0 means
// nothing was found.
type Match struct {
	Distance int
	Length   int
}

// SearchOptions tunes FindMatches and Parse.
type SearchOptions struct {
	MaxChain int                   // Candidates examined per position; 0 means MaxChain.
	Progress func(done, total int) // Optional; called as positions are consumed.
}

func DefaultSearchOptions() *SearchOptions {
	return &SearchOptions{MaxChain: MaxChain}
}

// hash3 folds the three bytes at the start of b into a bucket index.
func hash3(b []byte) int {
	h := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	h ^= h >> 12
	return int(h & (HashSize - 1))
}

// matcher links positions sharing a 3-byte prefix hash, newest to oldest:
// head holds the newest position per bucket and prev the next older one.
type matcher struct {
	src      []byte
	head     []int
	prev     []int
	maxChain int
}

func newMatcher(src []byte, maxChain int) *matcher {
	if maxChain <= 0 {
		maxChain = MaxChain
	}
	head := make([]int, HashSize)
	for i := range head {
		head[i] = -1
	}
	return &matcher{
		src:      src,
		head:     head,
		prev:     make([]int, len(src)),
		maxChain: maxChain,
	}
}

// indexable reports whether a 3-byte prefix starts at i.
func (m *matcher) indexable(i int) bool {
	return i+MinMatch <= len(m.src)
}

// search returns the longest match for position i among the positions
// inserted so far. Ties keep the nearest candidate.
func (m *matcher) search(i int) Match {
	src := m.src
	limit := min(len(src)-i, MaxMatch)
	var best Match
	for j, chain := m.head[hash3(src[i:])], 0; j >= 0 && chain < m.maxChain; j, chain = m.prev[j], chain+1 {
		dist := i - j
		// Older candidates only get farther away.
		if dist > WindowSize {
			break
		}
		k := 0
		for k < limit && src[j+k] == src[i+k] {
			k++
		}
		if k > best.Length {
			best = Match{Distance: dist, Length: k}
			if k == limit {
				break
			}
		}
	}
	return best
}

func (m *matcher) insert(i int) {
	h := hash3(m.src[i:])
	m.prev[i] = m.head[h]
	m.head[h] = i
}

type progress struct {
	fn    func(done, total int)
	total int
	next  int
}

func (p *progress) update(done int) {
	if p.fn == nil || done < p.next {
		return
	}
	p.fn(done, p.total)
	p.next = done + progressStep
}

func (p *progress) finish() {
	if p.fn != nil {
		p.fn(p.total, p.total)
	}
}

// FindMatches returns the longest match available at every position of src.
// Each position is linked into its chain after it has been searched, whether
// or not an earlier match will end up covering it. Positions closer than
// MinMatch to the end get no match.
func FindMatches(src []byte, opts *SearchOptions) []Match {
	if opts == nil {
		opts = DefaultSearchOptions()
	}
	p := &progress{fn: opts.Progress, total: len(src)}
	matches := make([]Match, len(src))
	if len(src) < MinMatch {
		p.finish()
		return matches
	}

	m := newMatcher(src, opts.MaxChain)
	for i := 0; m.indexable(i); i++ {
		matches[i] = m.search(i)
		m.insert(i)
		p.update(i)
	}
	p.finish()
	return matches
}
