package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Decode decodes a bit-string produced by Encode, using the tree that Encode
// returned alongside it.
//
// Decoding fails with a *MalformedInputError (which wraps ErrMalformedInput)
// if the bit-string contains anything other than '0' and '1', if it ends in
// the middle of a code, or if it contains a code that the tree does not.
// A nil tree yields ErrInvalidInput.  No partial result is returned on
// failure.
func Decode(bits string, tree *Tree) ([]Symbol, error) {
	if tree == nil || len(tree.nodes) == 0 {
		return nil, fmt.Errorf("%w: cannot decode without a code tree", ErrInvalidInput)
	}
	return Decoder{tree: tree}.Decode(bits)
}

// DecodeString is Decode for text, with one Symbol per rune.
func DecodeString(bits string, tree *Tree) (string, error) {
	symbols, err := Decode(bits, tree)
	if err != nil {
		return "", err
	}
	return StringFromSymbols(symbols), nil
}

// Decoder decodes bit-strings by walking an existing Tree.
type Decoder struct {
	tree *Tree
}

// NewDecoder is a convenience function that allocates and initializes a
// Decoder.
func NewDecoder(tree *Tree) *Decoder {
	d := new(Decoder)
	d.Init(tree)
	return d
}

// Init initializes this Decoder to walk the given tree.
func (d *Decoder) Init(tree *Tree) {
	assert.Assertf(tree != nil && len(tree.nodes) != 0, "Decoder.Init requires a non-empty Tree")
	*d = Decoder{tree: tree}
}

// Tree returns the tree that this Decoder was initialized with.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode decodes a bit-string into Symbols.  See the package-level Decode
// for the possible errors.
func (d Decoder) Decode(bits string) ([]Symbol, error) {
	assert.Assertf(d.tree != nil, "Decoder used before Init")
	t := d.tree
	out := make([]Symbol, 0, len(bits)/log2int(t.NumLeaves()))

	// A lone leaf has no edges to walk: each "0" is one Symbol.
	if root := t.nodes[t.root]; root.IsLeaf() {
		for index := 0; index < len(bits); index++ {
			switch ch := bits[index]; ch {
			case '0':
				out = append(out, root.Symbol)
			case '1':
				return nil, &MalformedInputError{Offset: index, Reason: "no code begins with bit 1"}
			default:
				return nil, &MalformedInputError{Offset: index, Reason: fmt.Sprintf("invalid bit %q", ch)}
			}
		}
		return out, nil
	}

	current := t.root
	start := 0
	for index := 0; index < len(bits); index++ {
		node := t.nodes[current]
		switch ch := bits[index]; ch {
		case '0':
			current = node.Left
		case '1':
			current = node.Right
		default:
			return nil, &MalformedInputError{Offset: index, Reason: fmt.Sprintf("invalid bit %q", ch)}
		}

		if next := t.nodes[current]; next.IsLeaf() {
			out = append(out, next.Symbol)
			current = t.root
			start = index + 1
		}
	}

	if current != t.root {
		reason := fmt.Sprintf("bit-string ends in the middle of the code starting at bit %d", start)
		return nil, &MalformedInputError{Offset: len(bits), Reason: reason}
	}
	return out, nil
}

// DecodeString is Decode for text, with one Symbol per rune.
func (d Decoder) DecodeString(bits string) (string, error) {
	symbols, err := d.Decode(bits)
	if err != nil {
		return "", err
	}
	return StringFromSymbols(symbols), nil
}
