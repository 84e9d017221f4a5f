package huffman

// Entry is one (symbol, frequency) pair of a FrequencyTable.
type Entry struct {
	Symbol    uint16
	Frequency uint64
}

// FrequencyTable counts symbols and remembers the order in which each symbol
// first appeared. That order is the serialization order, and Build breaks
// frequency ties by it.
type FrequencyTable struct {
	entries []Entry
	index   map[uint16]int
}

// NewFrequencyTable returns a table holding entries in the given order.
func NewFrequencyTable(entries ...Entry) *FrequencyTable {
	t := &FrequencyTable{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[uint16]int, len(entries)),
	}
	for _, e := range entries {
		if _, ok := t.index[e.Symbol]; !ok {
			t.index[e.Symbol] = len(t.entries)
		}
		t.entries = append(t.entries, e)
	}
	return t
}

// Add counts one more occurrence of symbol.
func (t *FrequencyTable) Add(symbol uint16) {
	if i, ok := t.index[symbol]; ok {
		t.entries[i].Frequency++
		return
	}
	t.index[symbol] = len(t.entries)
	t.entries = append(t.entries, Entry{Symbol: symbol, Frequency: 1})
}

func (t *FrequencyTable) Frequency(symbol uint16) uint64 {
	if i, ok := t.index[symbol]; ok {
		return t.entries[i].Frequency
	}
	return 0
}

func (t *FrequencyTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table in serialization order.
func (t *FrequencyTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
