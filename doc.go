// Package huffman implements plain (non-canonical) Huffman codes over the
// 256-symbol byte alphabet.
//
// The encoded form is a string of '0' and '1' characters, one character per
// bit, and it is only decodable together with the tree that produced it.
// Compress returns both as an EncodedResult; Decompress reverses it.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
