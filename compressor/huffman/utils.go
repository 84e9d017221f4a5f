package huffman

type huffmanTree interface {
	getFrequency() uint64
	getId() int
}

type huffmanLeaf struct {
	freq   uint64
	id     int
	symbol uint16
	guard  bool
}

type huffmanNode struct {
	freq        uint64
	id          int
	left, right huffmanTree
}

// huffmanHeap orders by frequency, then by the order nodes were created.
type huffmanHeap []huffmanTree

func (hub *huffmanHeap) Push(item any) {
	*hub = append(*hub, item.(huffmanTree))
}

func (hub *huffmanHeap) Pop() any {
	popped := (*hub)[len(*hub)-1]
	(*hub) = (*hub)[:len(*hub)-1]
	return popped
}

func (hub huffmanHeap) Len() int {
	return len(hub)
}

func (hub huffmanHeap) Less(i, j int) bool {
	if hub[i].getFrequency() != hub[j].getFrequency() {
		return hub[i].getFrequency() < hub[j].getFrequency()
	}
	return hub[i].getId() < hub[j].getId()
}

func (hub huffmanHeap) Swap(i, j int) {
	hub[i], hub[j] = hub[j], hub[i]
}

func (leaf huffmanLeaf) getId() int {
	return leaf.id
}

func (leaf huffmanLeaf) getFrequency() uint64 {
	return leaf.freq
}

func (node huffmanNode) getFrequency() uint64 {
	return node.freq
}

func (node huffmanNode) getId() int {
	return node.id
}
