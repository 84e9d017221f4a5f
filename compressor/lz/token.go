package lz

type TokenKind int

const (
	LiteralToken TokenKind = iota
	MatchToken
)

// Token is one unit of the compressed stream. A literal carries Value; a match
// carries the backward Distance and the number of bytes it copies.
type Token struct {
	Kind     TokenKind
	Value    byte
	Length   int
	Distance int
}

// Tokenize walks src left to right and greedily takes the match recorded for
// each position when it is at least MinMatch long. Bytes covered by a match are
// skipped.
func Tokenize(src []byte, matches []Match) []Token {
	tokens := make([]Token, 0, len(src)/2+1)
	for i := 0; i < len(src); {
		m := matches[i]
		if m.Length >= MinMatch {
			tokens = append(tokens, Token{
				Kind:     MatchToken,
				Length:   m.Length,
				Distance: m.Distance,
			})
			i += m.Length
			continue
		}
		tokens = append(tokens, Token{
			Kind:  LiteralToken,
			Value: src[i],
		})
		i++
	}
	return tokens
}

// Parse produces the same tokens as Tokenize(src, FindMatches(src, opts)) but
// only searches the positions a token starts at. Covered positions are still
// linked into the hash chains, so later searches see the same candidates.
func Parse(src []byte, opts *SearchOptions) []Token {
	if opts == nil {
		opts = DefaultSearchOptions()
	}
	p := &progress{fn: opts.Progress, total: len(src)}
	m := newMatcher(src, opts.MaxChain)
	tokens := make([]Token, 0, len(src)/2+1)

	for i := 0; i < len(src); {
		var best Match
		if m.indexable(i) {
			best = m.search(i)
		}

		if best.Length < MinMatch {
			tokens = append(tokens, Token{
				Kind:  LiteralToken,
				Value: src[i],
			})
			if m.indexable(i) {
				m.insert(i)
			}
			i++
			p.update(i)
			continue
		}

		tokens = append(tokens, Token{
			Kind:     MatchToken,
			Length:   best.Length,
			Distance: best.Distance,
		})
		for end := i + best.Length; i < end; i++ {
			if m.indexable(i) {
				m.insert(i)
			}
		}
		p.update(i)
	}
	p.finish()
	return tokens
}
