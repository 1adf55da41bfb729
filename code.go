package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits as '0' and '1' characters.  The first
// character is the branch taken at the root.
type Code string

// Len returns the number of bits in this Code.
func (c Code) Len() int {
	return len(c)
}

// HasPrefix returns true if prefix is a prefix of this Code.
func (c Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(c), string(prefix))
}

// String returns the string representation of this Code.
func (c Code) String() string {
	return strconv.Quote(string(c))
}

var _ fmt.Stringer = Code("")

// CodeTable maps each symbol of a Huffman tree to its Code.
type CodeTable struct {
	codes      [NumSymbols]Code
	numSymbols int
	minSize    int
	maxSize    int
}

// BuildCodeTable derives the CodeTable for the tree rooted at root.  A '0' is
// appended for each left branch and a '1' for each right branch.  The table
// for a nil root is empty.  The placeholder leaf gets no entry.
//
func BuildCodeTable(root *Node) CodeTable {
	var t CodeTable
	if root == nil {
		return t
	}
	assert.Assertf(!root.IsLeaf(), "root of Huffman tree is a leaf")

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// len(path) == len(stack)-1 at the top of each iteration.

	type stackItem struct {
		node *Node
		x    byte
	}

	stack := make([]stackItem, 0, 2*log2int(NumSymbols))
	path := make([]byte, 0, 2*log2int(NumSymbols))

	processChild := func(child *Node, bit byte) {
		path = append(path, bit)
		if !child.IsLeaf() {
			stack = append(stack, stackItem{node: child})
			return
		}
		if !child.IsPlaceholder() {
			t.set(child.symbol, Code(path))
		}
		path = path[:len(path)-1]
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, '0')
		case 1:
			processChild(top.node.right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	return t
}

func (t *CodeTable) set(symbol Symbol, hc Code) {
	assert.Assertf(symbol.IsValid(), "invalid symbol %d", symbol)
	assert.Assertf(t.codes[symbol] == "", "duplicate leaf for symbol %d", symbol)

	size := hc.Len()
	if t.numSymbols == 0 {
		t.minSize = size
		t.maxSize = size
	} else if t.minSize > size {
		t.minSize = size
	} else if t.maxSize < size {
		t.maxSize = size
	}

	t.codes[symbol] = hc
	t.numSymbols++
}

// Lookup returns the Code for b, or false if b does not occur in the tree.
func (t *CodeTable) Lookup(b byte) (Code, bool) {
	hc := t.codes[b]
	return hc, hc != ""
}

// Len returns the number of symbols in the table.
func (t *CodeTable) Len() int {
	return t.numSymbols
}

// MinSize is the bit length of the shortest code.
func (t *CodeTable) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *CodeTable) MaxSize() int {
	return t.maxSize
}

// Symbols returns the symbols present in the table, in ascending order.
func (t *CodeTable) Symbols() []byte {
	out := make([]byte, 0, t.numSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if t.codes[symbol] != "" {
			out = append(out, byte(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
