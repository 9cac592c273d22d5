package huffman

import (
	mathbits "math/bits"
)

// log2int returns the number of bits needed to represent x, with a minimum
// of 1.  For an alphabet of x symbols, this approximates the average code
// length and is good enough for sizing buffers.
func log2int(x int) int {
	if x <= 1 {
		return 1
	}
	return mathbits.Len(uint(x - 1))
}
