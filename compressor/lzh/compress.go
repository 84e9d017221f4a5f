package lzh

import (
	"bytes"
	"fmt"

	"github.com/FitrahHaque/lzh/compressor/bitstream"
	"github.com/FitrahHaque/lzh/compressor/huffman"
	"github.com/FitrahHaque/lzh/compressor/lz"
)

// CompressOptions configures compression. The container format does not
// depend on them; any container decodes with the same Decompress.
type CompressOptions struct {
	// MaxChain is the number of earlier positions examined per input position.
	// 0 selects lz.MaxChain. Larger values trade speed for ratio.
	MaxChain int
	// Progress, when set, is called with the number of positions searched so far.
	Progress func(done, total int)
}

// DefaultCompressOptions returns options with the standard search depth.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{MaxChain: lz.MaxChain}
}

// Stats describes one compression run.
type Stats struct {
	OriginalSize   int
	CompressedSize int
	HeaderSize     int
	Literals       int
	Matches        int
	MatchedBytes   int             // Input bytes covered by matches.
	StreamBits     uint64          // Token stream bits before padding.
	Table          []huffman.Entry // Match-length frequencies in header order.
	Codes          map[uint16]huffman.Code
}

// Ratio is the compressed size as a fraction of the original size.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// Compress encodes src into a container. Options nil means DefaultCompressOptions().
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	out, _, err := CompressWithStats(src, opts)
	return out, err
}

// CompressWithStats is Compress that also reports what the encoder did.
func CompressWithStats(src []byte, opts *CompressOptions) ([]byte, Stats, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if opts.MaxChain < 0 {
		return nil, Stats{}, fmt.Errorf("%w: %d", ErrInvalidChain, opts.MaxChain)
	}

	tokens := lz.Parse(src, &lz.SearchOptions{
		MaxChain: opts.MaxChain,
		Progress: opts.Progress,
	})
	table := lengthTable(tokens)
	tree, err := huffman.Build(table)
	if err != nil {
		return nil, Stats{}, err
	}

	h := Header{OriginalSize: uint64(len(src)), Table: table.Entries()}
	out, err := AppendHeader(make([]byte, 0, h.Size()+len(src)/2+16), h)
	if err != nil {
		return nil, Stats{}, err
	}
	buf := bytes.NewBuffer(out)
	bw := bitstream.NewWriter(buf)

	stats := Stats{
		OriginalSize: len(src),
		HeaderSize:   h.Size(),
		Table:        h.Table,
		Codes:        tree.Codes(),
	}
	for _, tok := range tokens {
		if err := writeToken(bw, tree, tok); err != nil {
			return nil, Stats{}, err
		}
		if tok.Kind == lz.MatchToken {
			stats.Matches++
			stats.MatchedBytes += tok.Length
		} else {
			stats.Literals++
		}
	}
	if err := bw.Flush(); err != nil {
		return nil, Stats{}, err
	}

	stats.StreamBits = bw.BitsWritten()
	stats.CompressedSize = buf.Len()
	return buf.Bytes(), stats, nil
}

// lengthTable tallies match lengths in order of first use. A stream without
// matches still gets one placeholder entry so a tree can be built.
func lengthTable(tokens []lz.Token) *huffman.FrequencyTable {
	table := huffman.NewFrequencyTable()
	for _, tok := range tokens {
		if tok.Kind == lz.MatchToken {
			table.Add(uint16(tok.Length))
		}
	}
	if table.Len() == 0 {
		return placeholderTable()
	}
	return table
}

func placeholderTable() *huffman.FrequencyTable {
	return huffman.NewFrequencyTable(huffman.Entry{Symbol: lz.MinMatch, Frequency: 1})
}

func writeToken(bw *bitstream.Writer, tree *huffman.Tree, tok lz.Token) error {
	if tok.Kind == lz.LiteralToken {
		if err := bw.WriteBit(false); err != nil {
			return err
		}
		return bw.WriteBits(uint64(tok.Value), LiteralBits)
	}

	code, ok := tree.Code(uint16(tok.Length))
	if !ok {
		return fmt.Errorf("lzh: no code for match length %d", tok.Length)
	}
	if err := bw.WriteBit(true); err != nil {
		return err
	}
	if err := bw.WriteBits(uint64(tok.Distance-1), DistanceBits); err != nil {
		return err
	}
	return bw.WriteBits(code.Bits, code.Length)
}
