package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned when a bit-string ends partway through a code.
	ErrTruncated = errors.New("huffman: bit-string ends in the middle of a code")

	// ErrPlaceholder is returned when a bit-string addresses the placeholder
	// leaf, which stands for no symbol.
	ErrPlaceholder = errors.New("huffman: bit-string addresses the placeholder leaf")

	// ErrNoTree is returned when a non-empty bit-string is decoded without a
	// tree.
	ErrNoTree = errors.New("huffman: no tree to decode with")
)

// LookupError is returned when a byte being encoded has no code in the
// CodeTable.
type LookupError struct {
	Symbol byte
	Offset int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("huffman: no code for symbol %d at offset %d", e.Symbol, e.Offset)
}

// InvalidBitError is returned when a bit-string contains a character other
// than '0' or '1'.
type InvalidBitError struct {
	Bit    byte
	Offset int
}

func (e *InvalidBitError) Error() string {
	return fmt.Sprintf("huffman: invalid bit %q at offset %d", e.Bit, e.Offset)
}
