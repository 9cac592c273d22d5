package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable records how many times each Symbol occurs in an input.
//
// The table also remembers the order in which Symbols first appeared, which
// is the tie-break order used by BuildTree among leaves of equal weight.
type FrequencyTable struct {
	counts map[Symbol]uint64
	order  []Symbol
}

// NewFrequencyTable counts the Symbols in input.  An empty input yields an
// empty table.
func NewFrequencyTable(input []Symbol) FrequencyTable {
	counts := make(map[Symbol]uint64)
	order := make([]Symbol, 0)
	for _, symbol := range input {
		if counts[symbol] == 0 {
			order = append(order, symbol)
		}
		counts[symbol]++
	}
	return FrequencyTable{counts: counts, order: order}
}

// Len returns the number of distinct Symbols in the table.
func (ft FrequencyTable) Len() int {
	return len(ft.order)
}

// Count returns the number of occurrences of symbol, which is 0 if symbol
// never occurred.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Symbols returns the distinct Symbols in order of first appearance.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// Leaves returns one Leaf per distinct Symbol, in order of first appearance,
// ready to be passed to BuildTree.
func (ft FrequencyTable) Leaves() []Leaf {
	out := make([]Leaf, len(ft.order))
	for index, symbol := range ft.order {
		out[index] = Leaf{Symbol: symbol, Weight: ft.counts[symbol]}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range ft.order {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
