package huffman

// EncodedResult pairs an encoded bit-string with the tree needed to decode
// it.  The bit-string alone is not self-describing.
type EncodedResult struct {
	root *Node
	bits string
}

// NewEncodedResult pairs root with bits.  root may be nil only when bits is
// empty, otherwise Decompress fails with ErrNoTree.
func NewEncodedResult(root *Node, bits string) EncodedResult {
	return EncodedResult{root: root, bits: bits}
}

// Root returns the root of the tree, or nil for empty input.
func (r EncodedResult) Root() *Node {
	return r.root
}

// Bits returns the encoded bit-string.
func (r EncodedResult) Bits() string {
	return r.bits
}

// Len returns the number of bits in the encoded bit-string.
func (r EncodedResult) Len() int {
	return len(r.bits)
}

// IsEmpty returns true if this is the result of compressing empty input.
func (r EncodedResult) IsEmpty() bool {
	return r.root == nil && len(r.bits) == 0
}

// Compress counts the frequencies of data, builds its Huffman tree and code
// table, and encodes data with them.  Empty input yields an empty result with
// no tree.
//
// Since the table is derived from data itself, the *LookupError path cannot
// be reached through Compress; it is still returned rather than hidden.
//
func Compress(data []byte) (EncodedResult, error) {
	freq := CountFrequencies(data)

	var e Encoder
	e.Init(&freq)

	bits, err := e.Encode(data)
	if err != nil {
		return EncodedResult{}, err
	}
	return NewEncodedResult(e.Root(), bits), nil
}

// Decompress decodes result back into the original bytes.  See
// Decoder.Decode for the errors it can return.
func Decompress(result EncodedResult) ([]byte, error) {
	var d Decoder
	d.Init(result.root)
	return d.Decode(result.bits)
}
