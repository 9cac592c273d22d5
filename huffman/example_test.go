package huffman_test

import (
	"fmt"

	"github.com/chronos-tachyon/dsa/huffman"
)

func ExampleEncodeString() {
	bits, tree, err := huffman.EncodeString("cabc")
	if err != nil {
		panic(err)
	}
	fmt.Println(bits)
	fmt.Println(tree)

	text, err := huffman.DecodeString(bits, tree)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)

	// Output:
	// 010110
	// (Huffman tree with 3 symbols, total weight 4)
	// cabc
}

func ExampleDecode_malformed() {
	_, tree, err := huffman.EncodeString("cabc")
	if err != nil {
		panic(err)
	}

	_, err = huffman.Decode("01", tree)
	fmt.Println(err)

	// Output:
	// huffman: malformed input at bit 2: bit-string ends in the middle of the code starting at bit 1
}
