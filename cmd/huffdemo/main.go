// Command huffdemo Huffman-encodes a piece of text, reports how much smaller
// the packed bit-string is than the text, and decodes it again.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/dsa/huffman"
)

const defaultText = "The bird is the word"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, newLogger(os.Stderr)))
}

func run(args []string, stdout io.Writer, logger Logger) int {
	fs := flag.NewFlagSet("huffdemo", flag.ContinueOnError)
	fs.SetOutput(stdout)
	text := fs.String("text", defaultText, "text to encode")
	verbose := fs.Bool("v", false, "dump the code table")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := demo(*text, *verbose, stdout); err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	logger.Infof("round trip of %d bytes succeeded", len(*text))
	return 0
}

func demo(text string, verbose bool, w io.Writer) error {
	fmt.Fprintf(w, "The size of the data is: %d\n", len(text))
	fmt.Fprintf(w, "The content of the data is: %s\n", text)

	bits, tree, err := huffman.EncodeString(text)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	packed, err := huffman.Pack(bits)
	if err != nil {
		return fmt.Errorf("pack: %w", err)
	}

	if verbose {
		if _, err := huffman.NewEncoder(tree).Dump(w); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "The size of the encoded data is: %d\n", len(packed))
	fmt.Fprintf(w, "The content of the encoded data is: %s\n", bits)

	unpacked, err := huffman.Unpack(packed, len(bits))
	if err != nil {
		return fmt.Errorf("unpack: %w", err)
	}
	decoded, err := huffman.DecodeString(unpacked, tree)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Fprintf(w, "The size of the decoded data is: %d\n", len(decoded))
	fmt.Fprintf(w, "The content of the decoded data is: %s\n", decoded)

	if decoded != text {
		return fmt.Errorf("round trip mismatch: got %q", decoded)
	}
	return nil
}
