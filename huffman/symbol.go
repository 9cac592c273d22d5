package huffman

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.  Symbols are compared only by equality.  Text is handled one rune per Symbol.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is carried by internal tree nodes, and returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsFromString splits a string into one Symbol per rune.
func SymbolsFromString(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, ch := range str {
		out = append(out, Symbol(ch))
	}
	return out
}

// StringFromSymbols is the inverse of SymbolsFromString.
func StringFromSymbols(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, symbol := range symbols {
		sb.WriteRune(rune(symbol))
	}
	return sb.String()
}

// String returns a programmer-readable representation of this Symbol.
func (symbol Symbol) String() string {
	if symbol < 0 {
		return "<none>"
	}
	if symbol <= unicode.MaxRune && unicode.IsPrint(rune(symbol)) {
		return strconv.QuoteRune(rune(symbol))
	}
	return "#" + strconv.FormatInt(int64(symbol), 10)
}

var _ fmt.Stringer = Symbol(0)
