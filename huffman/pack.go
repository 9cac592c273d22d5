package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack packs a bit-string of '0' and '1' bytes into bytes, eight bits per
// byte, first bit in the most significant position.  The final byte is
// padded with zero bits.  The caller must remember len(bits) in order to
// Unpack the result; no length or other header is written.
func Pack(bits string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)

	w := bitio.NewWriter(&buf)
	for index := 0; index < len(bits); index++ {
		switch ch := bits[index]; ch {
		case '0':
			w.TryWriteBool(false)
		case '1':
			w.TryWriteBool(true)
		default:
			return nil, &MalformedInputError{Offset: index, Reason: fmt.Sprintf("invalid bit %q", ch)}
		}
	}
	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack is the inverse of Pack: it extracts the first n bits of data as a
// bit-string of '0' and '1' bytes.
func Unpack(data []byte, n int) (string, error) {
	if n < 0 || n > 8*len(data) {
		return "", fmt.Errorf("%w: cannot unpack %d bits from %d bytes", ErrInvalidInput, n, len(data))
	}

	out := make([]byte, n)
	r := bitio.NewReader(bytes.NewReader(data))
	for index := 0; index < n; index++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		out[index] = '0'
		if bit {
			out[index] = '1'
		}
	}
	return string(out), nil
}
