package lz

import "math"

// Match search constants.
const (
	WindowSize = 32768          // Farthest backward distance a match may reference.
	MinMatch   = 3              // Shorter matches are emitted as literals.
	MaxMatch   = math.MaxUint16 // Longest match; lengths travel as 16-bit symbols.
	MaxChain   = 64             // Default number of chain candidates examined per position.
	HashBits   = 16
	HashSize   = 1 << HashBits
)

// progressStep is how many positions pass between Progress callbacks.
const progressStep = 1 << 14
