package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decoder turns a '0'/'1' bit-string back into bytes by walking a Huffman
// tree from the root, one branch per bit, emitting a symbol at each leaf.
type Decoder struct {
	root  *Node
	table CodeTable
}

// Init initializes this Decoder with the tree rooted at root.  A nil root is
// permitted; such a Decoder only accepts the empty bit-string.
func (d *Decoder) Init(root *Node) {
	*d = Decoder{
		root:  root,
		table: BuildCodeTable(root),
	}
}

// Decode decodes bits.  The empty bit-string always decodes to empty output.
//
// Decode fails with an *InvalidBitError if bits contains a character other
// than '0' or '1', with ErrPlaceholder if a code leads to the placeholder
// leaf, with ErrTruncated if bits ends partway through a code, and with
// ErrNoTree if bits is non-empty but there is no tree.
//
func (d *Decoder) Decode(bits string) ([]byte, error) {
	if len(bits) == 0 {
		return []byte{}, nil
	}
	if d.root == nil {
		return nil, ErrNoTree
	}

	out := make([]byte, 0, len(bits)/d.table.maxSize)
	current := d.root
	for offset := 0; offset < len(bits); offset++ {
		switch bit := bits[offset]; bit {
		case '0':
			current = current.left
		case '1':
			current = current.right
		default:
			return nil, &InvalidBitError{Bit: bit, Offset: offset}
		}

		if !current.IsLeaf() {
			continue
		}
		if current.IsPlaceholder() {
			return nil, fmt.Errorf("%w: code ending at offset %d", ErrPlaceholder, offset)
		}
		out = append(out, byte(current.symbol))
		current = d.root
	}

	if current != d.root {
		return nil, fmt.Errorf("%w: %d bits decoded into %d symbols", ErrTruncated, len(bits), len(out))
	}
	return out, nil
}

// Root returns the root of the tree, or nil.
func (d *Decoder) Root() *Node {
	return d.root
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() int {
	return d.table.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() int {
	return d.table.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.table.maxSize)
	symbols := d.table.Symbols()
	keys := make(byCode, 0, len(symbols))
	bySymbol := make(map[Code]byte, len(symbols))
	for _, symbol := range symbols {
		hc := d.table.codes[symbol]
		keys = append(keys, hc)
		bySymbol[hc] = symbol
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, bySymbol[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
