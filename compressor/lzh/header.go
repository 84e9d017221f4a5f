package lzh

import (
	"encoding/binary"
	"fmt"

	"github.com/FitrahHaque/lzh/compressor/huffman"
)

// Header is the byte-aligned prefix of a container: the uncompressed length
// and the match-length frequency table in the order it was tallied.
type Header struct {
	OriginalSize uint64
	Table        []huffman.Entry
}

// Size is the encoded length of h in bytes.
func (h Header) Size() int {
	return FixedHeaderSize + EntrySize*len(h.Table)
}

// AppendHeader appends the little-endian encoding of h to dst.
func AppendHeader(dst []byte, h Header) ([]byte, error) {
	if len(h.Table) > MaxEntries {
		return nil, fmt.Errorf("%w: %d entries", ErrTooManySymbols, len(h.Table))
	}
	dst = binary.LittleEndian.AppendUint64(dst, h.OriginalSize)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(h.Table)))
	for _, e := range h.Table {
		dst = binary.LittleEndian.AppendUint16(dst, e.Symbol)
		dst = binary.LittleEndian.AppendUint64(dst, e.Frequency)
	}
	return dst, nil
}

// ReadHeader parses the header at the start of src and returns it together
// with the number of bytes it occupies.
func ReadHeader(src []byte) (Header, int, error) {
	if len(src) < FixedHeaderSize {
		return Header{}, 0, fmt.Errorf("%w: have %d bytes, need %d", ErrHeaderTooShort, len(src), FixedHeaderSize)
	}
	h := Header{OriginalSize: binary.LittleEndian.Uint64(src)}
	count := int(binary.LittleEndian.Uint16(src[8:]))
	size := FixedHeaderSize + count*EntrySize
	if len(src) < size {
		return Header{}, 0, fmt.Errorf("%w: %d entries need %d bytes, have %d", ErrHeaderTooShort, count, size, len(src))
	}

	h.Table = make([]huffman.Entry, count)
	p := src[FixedHeaderSize:]
	for i := range h.Table {
		h.Table[i] = huffman.Entry{
			Symbol:    binary.LittleEndian.Uint16(p),
			Frequency: binary.LittleEndian.Uint64(p[2:]),
		}
		p = p[EntrySize:]
	}
	return h, size, nil
}
