package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol of a Tree to its Code.
type CodeTable struct {
	codes   map[Symbol]Code
	order   []Symbol
	minSize byte
	maxSize byte
}

// BuildCodeTable walks the given tree and assigns each leaf the Code spelled
// by the path from the root to that leaf, with '0' for each step to a left
// child and '1' for each step to a right child.
//
// If the root is itself a leaf, its Symbol is assigned the one-bit Code "0".
func BuildCodeTable(t *Tree) CodeTable {
	assert.Assertf(t != nil && len(t.nodes) != 0, "BuildCodeTable requires a non-empty Tree")

	numLeaves := t.NumLeaves()
	ct := CodeTable{
		codes: make(map[Symbol]Code, numLeaves),
		order: make([]Symbol, 0, numLeaves),
	}

	record := func(symbol Symbol, hc Code) {
		ct.codes[symbol] = hc
		ct.order = append(ct.order, symbol)
		if len(ct.order) == 1 {
			ct.minSize = hc.Size
			ct.maxSize = hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
	}

	if root := t.nodes[t.root]; root.IsLeaf() {
		record(root.Symbol, MakeCode(1, 0))
		return ct
	}

	// Walk the tree with an explicit stack.  Only internal nodes are ever
	// pushed, each along with the Code for the path that reached it.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id   NodeID
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2int(numLeaves)+1)

	processChild := func(id NodeID, hc Code) {
		node := t.nodes[id]
		if node.IsLeaf() {
			record(node.Symbol, hc)
			return
		}
		stack = append(stack, stackItem{id: id, code: hc})
	}

	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		node := t.nodes[top.id]
		code := top.code
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(node.Left, code.Append(0))
		case 1:
			processChild(node.Right, code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}

	return ct
}

// Len returns the number of Symbols in the table.
func (ct CodeTable) Len() int {
	return len(ct.order)
}

// Lookup returns the Code for symbol, if symbol is in the table.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Symbols returns the Symbols in the table, ordered as their leaves appear
// from left to right in the tree.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.order))
	copy(out, ct.order)
	return out
}

// MinSize is the bit length of the shortest Code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest Code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.order {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
