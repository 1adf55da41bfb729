package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Node is one node of a Huffman tree.  A leaf has no children and carries a
// Symbol; an internal node has exactly two children and carries
// InvalidSymbol.  Nodes are immutable once BuildTree returns them.
type Node struct {
	symbol Symbol
	weight uint64
	left   *Node
	right  *Node

	// seq is the creation order, used as the last tie-break in the queue.
	seq uint32
}

// Symbol returns the symbol of a leaf, or InvalidSymbol for internal nodes
// and for the placeholder leaf.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Weight returns the frequency of a leaf or the summed frequency of an
// internal node.
func (n *Node) Weight() uint64 {
	return n.weight
}

// Left returns the child reached by a '0' bit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a '1' bit, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true if this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// IsPlaceholder returns true if this node is the synthetic leaf added to
// trees built from a single distinct symbol.
func (n *Node) IsPlaceholder() bool {
	return n.IsLeaf() && n.symbol == InvalidSymbol
}

// NumLeaves returns the number of leaves in the tree rooted at n, including
// any placeholder leaf.
func (n *Node) NumLeaves() int {
	var count int
	n.walk(func(node *Node, depth int) {
		if node.IsLeaf() {
			count++
		}
	})
	return count
}

// Depth returns the length of the longest root-to-leaf path.
func (n *Node) Depth() int {
	var deepest int
	n.walk(func(node *Node, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}

// Dump writes a programmer-readable debugging dump of the tree rooted at n
// to the given writer.  Each line is one node, indented by its depth, with
// the branch bit that leads to it.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.walkBranches(func(node *Node, depth int, branch byte) {
		buf.WriteByte('\t')
		for i := 0; i < depth; i++ {
			buf.WriteString("  ")
		}
		if branch != 0 {
			buf.WriteByte(branch)
			buf.WriteString(": ")
		}
		switch {
		case node.IsPlaceholder():
			fmt.Fprintf(&buf, "placeholder (%d)\n", node.weight)
		case node.IsLeaf():
			fmt.Fprintf(&buf, "%d %q (%d)\n", node.symbol, byte(node.symbol), node.weight)
		default:
			fmt.Fprintf(&buf, "* (%d)\n", node.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) walk(fn func(node *Node, depth int)) {
	n.walkBranches(func(node *Node, depth int, _ byte) {
		fn(node, depth)
	})
}

// walkBranches visits the tree in pre-order, left before right, without
// recursion.  Skewed trees over a 256-symbol alphabet can be 255 levels deep.
func (n *Node) walkBranches(fn func(node *Node, depth int, branch byte)) {
	if n == nil {
		return
	}

	type stackItem struct {
		node   *Node
		depth  int
		branch byte
	}

	stack := []stackItem{{node: n}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(top.node, top.depth, top.branch)
		if top.node.IsLeaf() {
			continue
		}
		stack = append(stack,
			stackItem{top.node.right, top.depth + 1, '1'},
			stackItem{top.node.left, top.depth + 1, '0'})
	}
}
