/*
Package lzh implements an LZ77 compressor whose match lengths are Huffman coded.

Matches are found with 3-byte hash chains over a 32 KiB window (64 candidates
per position by default) and chosen greedily. Literals are stored as raw bytes.
The lengths of the chosen matches are tallied, a Huffman tree is built from the
tally, and only the tally is stored; the decoder rebuilds the same tree from it.

Container layout, integers little-endian:

	offset 0        original length            uint64
	offset 8        table entry count M        uint16
	offset 10       M x (length, frequency)    uint16 + uint64
	offset 10+10M   token stream               bits, MSB first, zero padded

Each token starts with a flag bit. 0 is followed by an 8-bit literal, 1 by a
15-bit distance-1 and the Huffman code of the match length.

# Examples

Round trip with default options:

	enc, err := lzh.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzh.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Report streams that end early instead of returning the shorter output:

	dec, err := lzh.Decompress(enc, lzh.StrictOptions())
	if errors.Is(err, lzh.ErrTruncated) {
		// dec holds the bytes recovered before the stream ended
	}

Trade speed for ratio:

	enc, stats, err := lzh.CompressWithStats(data, &lzh.CompressOptions{MaxChain: 256})
	_ = stats.Ratio()
*/
package lzh
