package lz

import (
	"bytes"
	"math/rand"
	"reflect"
	"testing"
)

func expand(tokens []Token) []byte {
	var out []byte
	for _, tok := range tokens {
		if tok.Kind == LiteralToken {
			out = append(out, tok.Value)
			continue
		}
		base := len(out) - tok.Distance
		for k := 0; k < tok.Length; k++ {
			out = append(out, out[base+k])
		}
	}
	return out
}

func TestRunProducesOverlappingMatch(t *testing.T) {
	src := []byte("aaaaaaaaaa")
	tokens := Parse(src, nil)
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(tokens), tokens)
	}
	if tokens[0].Kind != LiteralToken || tokens[0].Value != 'a' {
		t.Fatalf("first token = %+v", tokens[0])
	}
	want := Token{Kind: MatchToken, Distance: 1, Length: 9}
	if tokens[1] != want {
		t.Fatalf("second token = %+v, want %+v", tokens[1], want)
	}
	if got := expand(tokens); !bytes.Equal(got, src) {
		t.Fatalf("expand = %q", got)
	}
}

func TestRepeatedTriple(t *testing.T) {
	tokens := Parse([]byte("abcabcabcabc"), nil)
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens: %+v", len(tokens), tokens)
	}
	want := Token{Kind: MatchToken, Distance: 3, Length: 9}
	if tokens[3] != want {
		t.Fatalf("match token = %+v, want %+v", tokens[3], want)
	}
}

func TestTwoByteRepeatsStayLiteral(t *testing.T) {
	src := []byte("abXabYabZabQab")
	for i, tok := range Parse(src, nil) {
		if tok.Kind != LiteralToken {
			t.Fatalf("token %d is a match: %+v", i, tok)
		}
	}
}

func TestShortInputs(t *testing.T) {
	for _, src := range [][]byte{nil, {}, {7}, {7, 7}, {7, 7, 7}} {
		matches := FindMatches(src, nil)
		if len(matches) != len(src) {
			t.Fatalf("len(matches) = %d for %d bytes", len(matches), len(src))
		}
		tokens := Tokenize(src, matches)
		if len(tokens) != len(src) {
			t.Fatalf("%v: got %d tokens", src, len(tokens))
		}
	}
}

func TestTiesKeepNearest(t *testing.T) {
	src := []byte("abcXabcYabc")
	matches := FindMatches(src, nil)
	if got := matches[8]; got.Distance != 4 || got.Length != 3 {
		t.Fatalf("match at 8 = %+v, want distance 4 length 3", got)
	}
}

func TestWindowBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	block := make([]byte, WindowSize+5000)
	for i := range block {
		block[i] = byte('a' + rng.Intn(4))
	}
	src := append(append([]byte{}, block...), block...)

	tokens := Parse(src, nil)
	for i, tok := range tokens {
		if tok.Kind != MatchToken {
			continue
		}
		if tok.Distance < 1 || tok.Distance > WindowSize {
			t.Fatalf("token %d distance %d out of window", i, tok.Distance)
		}
		if tok.Length < MinMatch || tok.Length > MaxMatch {
			t.Fatalf("token %d length %d out of range", i, tok.Length)
		}
	}
	if got := expand(tokens); !bytes.Equal(got, src) {
		t.Fatal("tokens do not reproduce input")
	}
}

func TestFarRepeatOutsideWindowIgnored(t *testing.T) {
	// Unique bytes, a gap larger than the window, then the same bytes again.
	head := []byte("QZJXKV")
	gap := bytes.Repeat([]byte{0}, WindowSize)
	src := append(append(append([]byte{}, head...), gap...), head...)
	tokens := Parse(src, nil)
	tail := tokens[len(tokens)-len(head):]
	for i, tok := range tail {
		if tok.Kind != LiteralToken || tok.Value != head[i] {
			t.Fatalf("tail token %d = %+v, want literal %q", i, tok, head[i])
		}
	}
}

func TestMaxChainLimitsSearch(t *testing.T) {
	// The two newest "abc" sources share only three bytes; the full match is
	// the oldest one.
	src := []byte("abcdefg-abcZ-abcZ-abcdefg")
	deep := FindMatches(src, &SearchOptions{MaxChain: 64})
	shallow := FindMatches(src, &SearchOptions{MaxChain: 1})
	last := len(src) - 7
	if deep[last].Length != 7 || deep[last].Distance != last {
		t.Fatalf("deep search = %+v", deep[last])
	}
	if shallow[last].Length != 3 {
		t.Fatalf("shallow search = %+v", shallow[last])
	}
}

func TestParseAgreesWithFindMatches(t *testing.T) {
	inputs := [][]byte{
		[]byte("abcabcabcabc"),
		[]byte("abcXabcYabc-abcdefg-abcdefgh"),
		bytes.Repeat([]byte("to be or not to be, "), 40),
	}
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 5; n++ {
		in := make([]byte, 3000)
		for i := range in {
			in[i] = byte('a' + rng.Intn(3+n))
		}
		inputs = append(inputs, in)
	}
	for i, src := range inputs {
		for _, chain := range []int{1, 8, 64} {
			opts := &SearchOptions{MaxChain: chain}
			want := Tokenize(src, FindMatches(src, opts))
			got := Parse(src, opts)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("input %d, chain %d: Parse and Tokenize disagree", i, chain)
			}
		}
	}
}

func TestLongRunIsCapped(t *testing.T) {
	src := bytes.Repeat([]byte{'x'}, MaxMatch+5000)
	tokens := Parse(src, nil)
	want := []Token{
		{Kind: LiteralToken, Value: 'x'},
		{Kind: MatchToken, Distance: 1, Length: MaxMatch},
		{Kind: MatchToken, Distance: 1, Length: 4999},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("tokens = %+v", tokens)
	}
}

func TestProgressReachesTotal(t *testing.T) {
	src := bytes.Repeat([]byte("progress "), 5000)
	for name, run := range map[string]func(opts *SearchOptions){
		"parse":   func(opts *SearchOptions) { Parse(src, opts) },
		"matches": func(opts *SearchOptions) { FindMatches(src[:3000], opts) },
	} {
		var calls, lastDone, lastTotal int
		run(&SearchOptions{Progress: func(done, total int) {
			calls++
			lastDone, lastTotal = done, total
		}})
		if calls == 0 || lastDone != lastTotal {
			t.Fatalf("%s: %d calls, last progress %d/%d", name, calls, lastDone, lastTotal)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	data := bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(data, nil)
	}
}
