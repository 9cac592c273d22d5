package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned by Encode when given an empty input, and
	// by Decode when given no tree to decode with.
	ErrInvalidInput = errors.New("huffman: invalid input")

	// ErrMalformedInput is returned (wrapped in a *MalformedInputError) by
	// Decode when the bit-string cannot have been produced by the tree.
	ErrMalformedInput = errors.New("huffman: malformed input")

	// ErrEmptyAlphabet is returned by BuildTree when given zero leaves.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")
)

// MalformedInputError describes where and why a bit-string failed to decode.
type MalformedInputError struct {
	// Offset is the index into the bit-string of the offending bit, or the
	// length of the bit-string if it ended in the middle of a code.
	Offset int

	// Reason is a short human-readable description of the problem.
	Reason string
}

// Error fulfills the error interface.
func (err *MalformedInputError) Error() string {
	return fmt.Sprintf("huffman: malformed input at bit %d: %s", err.Offset, err.Reason)
}

// Unwrap returns ErrMalformedInput.
func (err *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

var _ error = (*MalformedInputError)(nil)
