package huffman

// Symbol represents a symbol in the byte alphabet.  Values 0 through 255 are
// real symbols; negative values are not.
type Symbol int32

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// InvalidSymbol is carried by internal nodes and by the placeholder leaf that
// BuildTree inserts when the input has only one distinct byte.
const InvalidSymbol = Symbol(-1)

// IsValid returns true if this Symbol is a real byte value.
func (s Symbol) IsValid() bool {
	return s >= 0 && s < NumSymbols
}
