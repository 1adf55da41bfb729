package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Encoder turns bytes into a '0'/'1' bit-string using a Huffman tree built
// from their frequencies.
type Encoder struct {
	root  *Node
	table CodeTable
}

// Init initializes this Encoder from a frequency table.  The tree is nil and
// the CodeTable empty if every frequency is zero.
func (e *Encoder) Init(freq *FrequencyTable) {
	root := BuildTree(freq)
	*e = Encoder{
		root:  root,
		table: BuildCodeTable(root),
	}
}

// Encode returns the concatenated codes of data, in order.  It fails with a
// *LookupError if some byte of data has no code.
func (e *Encoder) Encode(data []byte) (string, error) {
	var sb strings.Builder
	if err := e.EncodeTo(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// EncodeTo appends the concatenated codes of data to sb.  On error, sb may
// hold a partial encoding.
func (e *Encoder) EncodeTo(sb *strings.Builder, data []byte) error {
	return encodeTo(sb, data, &e.table)
}

// Root returns the root of the tree, or nil.
func (e *Encoder) Root() *Node {
	return e.root
}

// Table returns the CodeTable derived from the tree.
func (e *Encoder) Table() *CodeTable {
	return &e.table
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.table.maxSize)
	for _, symbol := range e.table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.table.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// EncodeWith encodes data with an existing CodeTable.
func EncodeWith(data []byte, table *CodeTable) (string, error) {
	var sb strings.Builder
	if err := encodeTo(&sb, data, table); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func encodeTo(sb *strings.Builder, data []byte, table *CodeTable) error {
	sb.Grow(len(data) * table.minSize)
	for offset, b := range data {
		hc, found := table.Lookup(b)
		if !found {
			return &LookupError{Symbol: b, Offset: offset}
		}
		sb.WriteString(string(hc))
	}
	return nil
}
