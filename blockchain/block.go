package blockchain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrCorrupt is returned when a block or chain fails verification.
var ErrCorrupt = errors.New("blockchain: corrupt")

// Field numbers of the block encoding.
const (
	fieldTimestamp    protowire.Number = 1
	fieldData         protowire.Number = 2
	fieldPreviousHash protowire.Number = 3
	fieldHash         protowire.Number = 4
)

// Block is one immutable entry of a Chain.
type Block struct {
	Timestamp    time.Time
	Data         string
	PreviousHash string
	Hash         string
}

// NewBlock builds a block and computes its hash.
func NewBlock(timestamp time.Time, data string, previousHash string) Block {
	b := Block{
		Timestamp:    timestamp,
		Data:         data,
		PreviousHash: previousHash,
	}
	b.Hash = b.ComputeHash()
	return b
}

// ComputeHash returns the hex-encoded SHA-256 of the block's timestamp,
// data, and previous hash.  The Hash field itself does not take part.
func (b Block) ComputeHash() string {
	sum := sha256.Sum256(b.appendContent(nil))
	return hex.EncodeToString(sum[:])
}

func (b Block) appendContent(buf []byte) []byte {
	buf = protowire.AppendTag(buf, fieldTimestamp, protowire.VarintType)
	buf = protowire.AppendVarint(buf, protowire.EncodeZigZag(b.Timestamp.UnixNano()))
	buf = protowire.AppendTag(buf, fieldData, protowire.BytesType)
	buf = protowire.AppendString(buf, b.Data)
	buf = protowire.AppendTag(buf, fieldPreviousHash, protowire.BytesType)
	buf = protowire.AppendString(buf, b.PreviousHash)
	return buf
}

// Verify checks that the block's Hash matches its content.
func (b Block) Verify() error {
	if expect := b.ComputeHash(); b.Hash != expect {
		return fmt.Errorf("%w: block hash is %q, content hashes to %q", ErrCorrupt, b.Hash, expect)
	}
	return nil
}

// MarshalBinary fulfills encoding.BinaryMarshaler.  The block is written in
// protobuf wire format.
func (b Block) MarshalBinary() ([]byte, error) {
	buf := b.appendContent(nil)
	buf = protowire.AppendTag(buf, fieldHash, protowire.BytesType)
	buf = protowire.AppendString(buf, b.Hash)
	return buf, nil
}

// UnmarshalBinary fulfills encoding.BinaryUnmarshaler.  Unknown fields are
// skipped.  The decoded block must pass Verify.
func (b *Block) UnmarshalBinary(raw []byte) error {
	var tmp Block
	for len(raw) != 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
		}
		raw = raw[n:]

		switch {
		case num == fieldTimestamp && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(raw)
			if n < 0 {
				return fmt.Errorf("%w: timestamp: %v", ErrCorrupt, protowire.ParseError(n))
			}
			tmp.Timestamp = time.Unix(0, protowire.DecodeZigZag(v)).UTC()
			raw = raw[n:]

		case (num == fieldData || num == fieldPreviousHash || num == fieldHash) && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(raw)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrCorrupt, num, protowire.ParseError(n))
			}
			switch num {
			case fieldData:
				tmp.Data = v
			case fieldPreviousHash:
				tmp.PreviousHash = v
			default:
				tmp.Hash = v
			}
			raw = raw[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, raw)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrCorrupt, num, protowire.ParseError(n))
			}
			raw = raw[n:]
		}
	}

	if err := tmp.Verify(); err != nil {
		return err
	}
	*b = tmp
	return nil
}
