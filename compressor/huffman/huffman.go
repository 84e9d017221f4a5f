package huffman

import (
	"container/heap"
	"errors"
)

var (
	ErrEmptyTable = errors.New("huffman: frequency table is empty")
	// ErrUnknownCode is returned by Decode when the bits lead to a leaf that
	// carries no symbol.
	ErrUnknownCode = errors.New("huffman: code does not map to a symbol")
)

// MaxCodeLength is the longest code Bits can hold. Deeper leaves are still
// reachable through Decode but get no Code.
const MaxCodeLength = 64

// Code is the bit pattern of a symbol, Length bits long, right aligned in Bits.
type Code struct {
	Bits   uint64
	Length uint8
}

// BitReader is the bit source Decode consumes.
type BitReader interface {
	ReadBit() (bool, error)
}

type Tree struct {
	root  huffmanTree
	codes map[uint16]Code
}

// Build merges the two lightest nodes until one remains. The first node
// popped becomes the left child. Leaves are numbered in table order and every
// merged node takes the next number, so equal frequencies resolve the same
// way for the same table.
//
// A table with a single symbol gets a guard leaf of frequency zero so the
// root is never a leaf and every symbol has a code at least one bit long.
// The guard is implied by the table and never serialized.
func Build(table *FrequencyTable) (*Tree, error) {
	if table == nil || table.Len() == 0 {
		return nil, ErrEmptyTable
	}
	var treehub huffmanHeap
	monoId := 0
	for _, e := range table.entries {
		treehub = append(treehub, huffmanLeaf{
			freq:   e.Frequency,
			id:     monoId,
			symbol: e.Symbol,
		})
		monoId++
	}
	if len(treehub) == 1 {
		treehub = append(treehub, huffmanLeaf{id: monoId, guard: true})
		monoId++
	}

	heap.Init(&treehub)
	for treehub.Len() > 1 {
		x := heap.Pop(&treehub).(huffmanTree)
		y := heap.Pop(&treehub).(huffmanTree)
		heap.Push(&treehub, huffmanNode{
			freq:  x.getFrequency() + y.getFrequency(),
			id:    monoId,
			left:  x,
			right: y,
		})
		monoId++
	}

	t := &Tree{
		root:  heap.Pop(&treehub).(huffmanTree),
		codes: make(map[uint16]Code, table.Len()),
	}
	t.assignCodes(t.root, 0, 0)
	return t, nil
}

func (t *Tree) assignCodes(tree huffmanTree, bits uint64, depth int) {
	switch n := tree.(type) {
	case huffmanLeaf:
		if !n.guard && depth <= MaxCodeLength {
			t.codes[n.symbol] = Code{Bits: bits, Length: uint8(depth)}
		}
	case huffmanNode:
		t.assignCodes(n.left, bits<<1, depth+1)
		t.assignCodes(n.right, bits<<1|1, depth+1)
	}
}

// Code returns the code of symbol, if the tree has a leaf for it no deeper
// than MaxCodeLength.
func (t *Tree) Code(symbol uint16) (Code, bool) {
	c, ok := t.codes[symbol]
	return c, ok
}

// Codes returns a copy of the whole code table.
func (t *Tree) Codes() map[uint16]Code {
	out := make(map[uint16]Code, len(t.codes))
	for s, c := range t.codes {
		out[s] = c
	}
	return out
}

// Decode walks from the root, one bit per edge (0 left, 1 right), and returns
// the symbol of the leaf it reaches. Errors from r are returned unchanged.
func (t *Tree) Decode(r BitReader) (uint16, error) {
	node := t.root
	for {
		switch n := node.(type) {
		case huffmanLeaf:
			if n.guard {
				return 0, ErrUnknownCode
			}
			return n.symbol, nil
		case huffmanNode:
			bit, err := r.ReadBit()
			if err != nil {
				return 0, err
			}
			if bit {
				node = n.right
			} else {
				node = n.left
			}
		}
	}
}
