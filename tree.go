package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// BuildTree builds the Huffman tree for the given frequencies and returns its
// root, or nil if every frequency is zero.
//
// Nodes are merged lowest first, ordered by (weight, symbol) with creation
// order as the final tie-break, so the same frequencies always produce the
// same tree.  The first node removed becomes the left child and the second
// becomes the right child.
//
// If only one symbol has a non-zero frequency, a placeholder leaf with
// weight 1 is added so that the real symbol still gets a 1-bit code.
//
func BuildTree(freq *FrequencyTable) *Node {
	var h nodeHeap
	h.list = make([]*Node, 0, NumSymbols)

	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if weight := freq[symbol]; weight != 0 {
			h.list = append(h.list, h.newNode(symbol, weight, nil, nil))
		}
	}

	if h.Len() == 0 {
		return nil
	}

	if h.Len() == 1 {
		h.list = append(h.list, h.newNode(InvalidSymbol, 1, nil, nil))
	}

	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)

		weight := a.weight + b.weight
		assert.Assertf(weight >= a.weight, "weight overflow: %d + %d", a.weight, b.weight)

		heap.Push(&h, h.newNode(InvalidSymbol, weight, a, b))
	}

	root := heap.Pop(&h).(*Node)
	assert.Assertf(!root.IsLeaf(), "root of Huffman tree is a leaf")
	return root
}

// type nodeHeap {{{

type nodeHeap struct {
	list    []*Node
	nextSeq uint32
}

func (h *nodeHeap) newNode(symbol Symbol, weight uint64, left *Node, right *Node) *Node {
	node := &Node{
		symbol: symbol,
		weight: weight,
		left:   left,
		right:  right,
		seq:    h.nextSeq,
	}
	h.nextSeq++
	return node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	return nodeLess(h.list[i], h.list[j])
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// nodeLess is a total order: weight, then symbol, then creation order.
// Internal nodes and the placeholder carry InvalidSymbol, so they sort ahead
// of real symbols of the same weight.
func nodeLess(a, b *Node) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.symbol != b.symbol {
		return a.symbol < b.symbol
	}
	return a.seq < b.seq
}

// }}}
