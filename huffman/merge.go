package huffman

import (
	"fmt"
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Leaf is a Symbol paired with its weight (i.e. number of occurrences),
// as consumed by BuildTree.
type Leaf struct {
	Symbol Symbol
	Weight uint64
}

// BuildTree builds a Huffman code tree from the given leaves, one per
// distinct Symbol.
//
// The leaves are first stably sorted by ascending weight, so leaves of equal
// weight keep the order in which they were given.  Then the two lightest
// nodes are repeatedly merged into a new internal node until a single root
// remains.  The first node taken becomes the left child and the second node
// taken becomes the right child.  When a leaf and a previously merged node
// weigh the same, the leaf is taken first.
//
// A single leaf becomes a tree consisting of only that leaf.  Zero leaves
// yield ErrEmptyAlphabet.  Weights skewed enough to push any leaf deeper than
// MaxCodeSize (e.g. a long run of Fibonacci weights) yield
// ErrInvalidInput.
func BuildTree(leaves []Leaf) (*Tree, error) {
	numLeaves := len(leaves)
	if numLeaves == 0 {
		return nil, ErrEmptyAlphabet
	}
	assert.Assertf(numLeaves <= math.MaxInt32/2, "too many leaves: %d", numLeaves)

	sorted := make(byWeight, numLeaves)
	copy(sorted, leaves)
	seen := make(map[Symbol]struct{}, numLeaves)
	for _, leaf := range sorted {
		if leaf.Symbol < 0 {
			return nil, fmt.Errorf("%w: negative symbol %d", ErrInvalidInput, int32(leaf.Symbol))
		}
		if leaf.Weight == 0 {
			return nil, fmt.Errorf("%w: symbol %s has zero weight", ErrInvalidInput, leaf.Symbol)
		}
		if _, found := seen[leaf.Symbol]; found {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrInvalidInput, leaf.Symbol)
		}
		seen[leaf.Symbol] = struct{}{}
	}
	sorted.Sort()

	// The arena holds the leaves at [0, numLeaves), followed by the
	// internal nodes in order of creation.  That makes both queues plain
	// index ranges:
	//
	//   leaves queue:   nodes[nextLeaf:numLeaves]
	//   combined queue: nodes[nextCombined:len(nodes)]
	//
	// Each merge weighs at least as much as the previous one, so the
	// combined queue is sorted by construction.

	nodes := make([]Node, 0, 2*numLeaves-1)
	for _, leaf := range sorted {
		nodes = append(nodes, Node{Symbol: leaf.Symbol, Weight: leaf.Weight, Left: NoNode, Right: NoNode})
	}

	// heights[i] is the height of the subtree rooted at nodes[i], which is
	// the length of the longest Code beneath it.
	heights := make([]int, numLeaves, 2*numLeaves-1)

	nextLeaf := 0
	nextCombined := numLeaves

	remaining := func() int {
		return (numLeaves - nextLeaf) + (len(nodes) - nextCombined)
	}

	pop := func() NodeID {
		var index int
		switch {
		case nextLeaf >= numLeaves:
			index = nextCombined
			nextCombined++
		case nextCombined >= len(nodes):
			index = nextLeaf
			nextLeaf++
		case nodes[nextLeaf].Weight <= nodes[nextCombined].Weight:
			index = nextLeaf
			nextLeaf++
		default:
			index = nextCombined
			nextCombined++
		}
		return NodeID(index)
	}

	for remaining() > 1 {
		a := pop()
		b := pop()

		weightA, weightB := nodes[a].Weight, nodes[b].Weight
		sum := weightA + weightB
		if sum < weightA {
			return nil, fmt.Errorf("%w: total weight overflows uint64", ErrInvalidInput)
		}

		height := 1 + max(heights[a], heights[b])
		if height > MaxCodeSize {
			return nil, fmt.Errorf("%w: code tree deeper than %d bits", ErrInvalidInput, MaxCodeSize)
		}

		nodes = append(nodes, Node{Symbol: InvalidSymbol, Weight: sum, Left: a, Right: b})
		heights = append(heights, height)
	}

	return &Tree{nodes: nodes, root: NodeID(len(nodes) - 1)}, nil
}

// type byWeight {{{

type byWeight []Leaf

func (list byWeight) Len() int {
	return len(list)
}

func (list byWeight) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byWeight) Less(i, j int) bool {
	return list[i].Weight < list[j].Weight
}

func (list byWeight) Sort() {
	sort.Stable(list)
}

var _ sort.Interface = byWeight(nil)

// }}}
