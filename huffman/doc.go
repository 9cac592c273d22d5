// Package huffman implements classic (non-canonical) Huffman coding over an
// arbitrary alphabet of Symbols.  Encode builds a frequency table from its
// input, merges the table's leaves into a code tree, derives one bit-string
// code per Symbol, and returns the encoded bit-string together with the
// tree.  Decode walks the same tree to recover the input.
//
// Bit-strings are ordinary Go strings made of the bytes '0' and '1'.
//
// Tree construction is fully deterministic: leaves enter the merge in
// ascending weight order, with ties broken by the order in which each Symbol
// first appeared in the input, and ties between a leaf and a merged node
// always favor the leaf.  As a consequence, two inputs with the same
// multiset of Symbols can produce different trees if their Symbols first
// appear in a different order.
//
// An alphabet of exactly one Symbol yields a tree with a single leaf and no
// internal nodes.  By convention that Symbol is assigned the one-bit code
// "0", so "aaaa" encodes as "0000".
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>, "Compression" (two-queue method)
package huffman
