// Package blockchain implements a toy append-only chain of blocks, each of
// which records the hash of the block before it.
package blockchain

import (
	"fmt"
	"time"
)

// Option customizes a Chain.
type Option func(*Chain)

// WithClock sets the source of block timestamps.  Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("blockchain: WithClock(nil)")
	}
	return func(c *Chain) {
		c.now = now
	}
}

type node struct {
	block Block
	next  *node
}

// Chain is a singly linked list of blocks.  The first block has an empty
// PreviousHash; every other block's PreviousHash is the Hash of the block
// before it.
//
// Chain is not safe for concurrent use.
type Chain struct {
	head *node
	tail *node
	size int
	now  func() time.Time
}

// New returns an empty chain.
func New(opts ...Option) *Chain {
	c := &Chain{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Append adds a block holding data to the end of the chain and returns it.
func (c *Chain) Append(data string) Block {
	var previousHash string
	if c.tail != nil {
		previousHash = c.tail.block.Hash
	}

	n := &node{block: NewBlock(c.now(), data, previousHash)}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.size++
	return n.block
}

// Len returns the number of blocks.
func (c *Chain) Len() int {
	return c.size
}

// Head returns the first block, if any.
func (c *Chain) Head() (Block, bool) {
	if c.head == nil {
		return Block{}, false
	}
	return c.head.block, true
}

// Tail returns the last block, if any.
func (c *Chain) Tail() (Block, bool) {
	if c.tail == nil {
		return Block{}, false
	}
	return c.tail.block, true
}

// Blocks returns every block from first to last.
func (c *Chain) Blocks() []Block {
	out := make([]Block, 0, c.size)
	for n := c.head; n != nil; n = n.next {
		out = append(out, n.block)
	}
	return out
}

// Search returns the data of the block whose Hash is hash.
func (c *Chain) Search(hash string) (string, bool) {
	for n := c.head; n != nil; n = n.next {
		if n.block.Hash == hash {
			return n.block.Data, true
		}
	}
	return "", false
}

// Verify recomputes every block's hash and checks every link.
func (c *Chain) Verify() error {
	var previousHash string
	index := 0
	for n := c.head; n != nil; n = n.next {
		if err := n.block.Verify(); err != nil {
			return fmt.Errorf("block %d: %w", index, err)
		}
		if n.block.PreviousHash != previousHash {
			return fmt.Errorf("block %d: %w: previous hash is %q, expected %q", index, ErrCorrupt, n.block.PreviousHash, previousHash)
		}
		previousHash = n.block.Hash
		index++
	}
	return nil
}
