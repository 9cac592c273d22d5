package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encode builds a Huffman code tree for input and returns input encoded as a
// bit-string of '0' and '1' bytes, along with the tree.  The caller must keep
// the tree in order to Decode the bit-string later.
//
// An empty input yields ErrInvalidInput, as no tree can be built for it.
func Encode(input []Symbol) (string, *Tree, error) {
	if len(input) == 0 {
		return "", nil, fmt.Errorf("%w: cannot encode an empty sequence", ErrInvalidInput)
	}

	ft := NewFrequencyTable(input)
	tree, err := BuildTree(ft.Leaves())
	if err != nil {
		return "", nil, err
	}

	var e Encoder
	e.Init(tree)
	bits, err := e.EncodeAll(input)
	if err != nil {
		return "", nil, err
	}
	return bits, tree, nil
}

// EncodeString is Encode for text, with one Symbol per rune.
func EncodeString(str string) (string, *Tree, error) {
	return Encode(SymbolsFromString(str))
}

// Encoder encodes Symbols using the codes of an existing Tree.
type Encoder struct {
	tree  *Tree
	table CodeTable
}

// NewEncoder is a convenience function that allocates and initializes an
// Encoder.
func NewEncoder(tree *Tree) *Encoder {
	e := new(Encoder)
	e.Init(tree)
	return e
}

// Init initializes this Encoder to use the codes of the given tree.
func (e *Encoder) Init(tree *Tree) {
	assert.Assertf(tree != nil, "Encoder.Init requires a non-nil Tree")
	*e = Encoder{
		tree:  tree,
		table: BuildCodeTable(tree),
	}
}

// Tree returns the tree that this Encoder was initialized with.
func (e Encoder) Tree() *Tree {
	return e.tree
}

// CodeTable returns the Code for every Symbol known to this Encoder.
func (e Encoder) CodeTable() CodeTable {
	return e.table
}

// Encode returns the Code for a single Symbol.  The boolean is false if the
// Symbol does not appear in the tree.
func (e Encoder) Encode(symbol Symbol) (Code, bool) {
	return e.table.Lookup(symbol)
}

// EncodeAll encodes a sequence of Symbols into a bit-string.  Every Symbol
// must appear in the tree, or else ErrInvalidInput is returned.
func (e Encoder) EncodeAll(input []Symbol) (string, error) {
	var sb strings.Builder
	sb.Grow(len(input) * log2int(e.table.Len()))
	for index, symbol := range input {
		hc, found := e.table.Lookup(symbol)
		if !found {
			return "", fmt.Errorf("%w: symbol %s at index %d is not in the code tree", ErrInvalidInput, symbol, index)
		}
		hc.AppendTo(&sb)
	}
	return sb.String(), nil
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.table.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.table.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.table.MaxSize())
	for _, symbol := range e.table.order {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, e.table.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
