package lzh

// Container layout constants.
const (
	DistanceBits    = 15 // Width of the stored distance-1 field.
	LiteralBits     = 8  // Literals are raw bytes.
	FixedHeaderSize = 10 // Original length (8) + entry count (2).
	EntrySize       = 10 // Symbol (2) + frequency (8).
	MaxEntries      = 1<<16 - 1
)

// maxPrealloc caps the output capacity reserved from an untrusted header.
const maxPrealloc = 64 << 20
