package lzh

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/FitrahHaque/lzh/compressor/bitstream"
	"github.com/FitrahHaque/lzh/compressor/huffman"
)

// Options configures Decompress.
type Options struct {
	// Strict makes a token stream that runs out before the original length
	// an error (ErrTruncated). Otherwise the shorter output is returned as is.
	Strict bool
}

// DefaultOptions returns lenient decoding options.
func DefaultOptions() *Options {
	return &Options{}
}

// StrictOptions returns options that report truncated streams.
func StrictOptions() *Options {
	return &Options{Strict: true}
}

// Decompress decodes a container produced by Compress. Options nil means
// DefaultOptions().
//
// In strict mode a truncated stream returns the bytes recovered so far along
// with ErrTruncated.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	h, n, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}
	table := huffman.NewFrequencyTable(h.Table...)
	if table.Len() == 0 {
		table = placeholderTable()
	}
	tree, err := huffman.Build(table)
	if err != nil {
		return nil, err
	}

	target := h.OriginalSize
	out := make([]byte, 0, min(target, maxPrealloc))
	br := bitstream.NewReader(bytes.NewReader(src[n:]))

	out, err = replay(out, target, br, tree)
	if errors.Is(err, bitstream.ErrNoMoreBits) {
		if opts.Strict {
			return out, fmt.Errorf("%w: got %d of %d bytes", ErrTruncated, len(out), target)
		}
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// replay appends decoded tokens to out until it holds target bytes. Matches
// are copied one byte at a time because the source may overlap the bytes
// being written.
func replay(out []byte, target uint64, br *bitstream.Reader, tree *huffman.Tree) ([]byte, error) {
	for uint64(len(out)) < target {
		isMatch, err := br.ReadBit()
		if err != nil {
			return out, err
		}

		if !isMatch {
			v, err := br.ReadBits(LiteralBits)
			if err != nil {
				return out, err
			}
			out = append(out, byte(v))
			continue
		}

		d, err := br.ReadBits(DistanceBits)
		if err != nil {
			return out, err
		}
		distance := int(d) + 1

		length, err := tree.Decode(br)
		if errors.Is(err, huffman.ErrUnknownCode) {
			return out, fmt.Errorf("%w at output offset %d", ErrInvalidSymbol, len(out))
		}
		if err != nil {
			return out, err
		}
		if distance > len(out) {
			return out, fmt.Errorf("%w: distance %d at output offset %d", ErrInvalidDistance, distance, len(out))
		}

		base := len(out) - distance
		for k := 0; k < int(length); k++ {
			out = append(out, out[base+k])
		}
	}
	if uint64(len(out)) > target {
		out = out[:target]
	}
	return out, nil
}
