package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// NodeID is the handle of a Node within its Tree.
type NodeID int32

// NoNode is the NodeID of a missing child.
const NoNode = NodeID(-1)

// Node is one node of a Huffman code tree.
//
// A leaf has a Symbol and no children.  An internal node has exactly two
// children, no Symbol (i.e. InvalidSymbol), and a Weight equal to the sum of
// its children's Weights.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   NodeID
	Right  NodeID
}

// IsLeaf returns true iff this node has no children.
func (node Node) IsLeaf() bool {
	return node.Left == NoNode && node.Right == NoNode
}

// Tree is an immutable Huffman code tree, stored as an arena of Nodes.
//
// Trees are built by BuildTree (or Encode) and are never modified
// afterward, so a single Tree may be shared by any number of goroutines.
type Tree struct {
	nodes []Node
	root  NodeID
}

// Root returns the NodeID of the root of the tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the Node with the given NodeID.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the size of the alphabet.
func (t *Tree) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the length of the input that
// this tree was built for.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].Weight
}

// Validate checks the structural invariants of the tree: every node is
// reachable from the root exactly once, every node is either a leaf or has
// two children, every internal node weighs as much as its children
// combined, no Symbol appears on more than one leaf, and no leaf is deeper
// than MaxCodeSize.
func (t *Tree) Validate() error {
	numNodes := NodeID(len(t.nodes))
	if numNodes == 0 {
		return ErrEmptyAlphabet
	}
	if t.root < 0 || t.root >= numNodes {
		return fmt.Errorf("%w: root %d out of range [0, %d)", ErrInvalidInput, t.root, numNodes)
	}

	seen := make([]bool, numNodes)
	symbols := make(map[Symbol]struct{}, t.NumLeaves())
	type stackItem struct {
		id    NodeID
		depth int
	}

	stack := make([]stackItem, 0, 64)
	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := item.id

		if id < 0 || id >= numNodes {
			return fmt.Errorf("%w: node %d out of range [0, %d)", ErrInvalidInput, id, numNodes)
		}
		if seen[id] {
			return fmt.Errorf("%w: node %d is reachable more than once", ErrInvalidInput, id)
		}
		seen[id] = true

		node := t.nodes[id]
		if node.IsLeaf() {
			if node.Symbol < 0 {
				return fmt.Errorf("%w: leaf %d has invalid symbol %d", ErrInvalidInput, id, int32(node.Symbol))
			}
			if node.Weight == 0 {
				return fmt.Errorf("%w: leaf %d has zero weight", ErrInvalidInput, id)
			}
			if _, found := symbols[node.Symbol]; found {
				return fmt.Errorf("%w: symbol %s appears on more than one leaf", ErrInvalidInput, node.Symbol)
			}
			symbols[node.Symbol] = struct{}{}
			continue
		}

		if node.Left == NoNode || node.Right == NoNode {
			return fmt.Errorf("%w: node %d has exactly one child", ErrInvalidInput, id)
		}
		if node.Symbol != InvalidSymbol {
			return fmt.Errorf("%w: internal node %d carries symbol %s", ErrInvalidInput, id, node.Symbol)
		}
		if node.Left < 0 || node.Left >= numNodes || node.Right < 0 || node.Right >= numNodes {
			return fmt.Errorf("%w: node %d has a child out of range [0, %d)", ErrInvalidInput, id, numNodes)
		}
		left, right := t.nodes[node.Left], t.nodes[node.Right]
		if sum := left.Weight + right.Weight; sum < left.Weight || sum != node.Weight {
			return fmt.Errorf("%w: node %d has weight %d, but its children weigh %d + %d", ErrInvalidInput, id, node.Weight, left.Weight, right.Weight)
		}
		if item.depth >= MaxCodeSize {
			return fmt.Errorf("%w: code tree deeper than %d bits", ErrInvalidInput, MaxCodeSize)
		}
		stack = append(stack, stackItem{node.Right, item.depth + 1}, stackItem{node.Left, item.depth + 1})
	}

	for id := NodeID(0); id < numNodes; id++ {
		if !seen[id] {
			return fmt.Errorf("%w: node %d is not reachable from the root", ErrInvalidInput, id)
		}
	}
	return nil
}

// String returns a brief description of the tree.
func (t *Tree) String() string {
	if len(t.nodes) == 0 {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d symbols, total weight %d)", t.NumLeaves(), t.Weight())
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for id, node := range t.nodes {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = {symbol=%s, weight=%d}\n", id, node.Symbol, node.Weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = {weight=%d, left=%d, right=%d}\n", id, node.Weight, node.Left, node.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)

// type jsonNode {{{

type jsonNode struct {
	Symbol *Symbol   `json:"symbol,omitempty"`
	Weight uint64    `json:"weight"`
	Left   *jsonNode `json:"left,omitempty"`
	Right  *jsonNode `json:"right,omitempty"`
}

func (t *Tree) toJSON(id NodeID) *jsonNode {
	node := t.nodes[id]
	if node.IsLeaf() {
		symbol := node.Symbol
		return &jsonNode{Symbol: &symbol, Weight: node.Weight}
	}
	return &jsonNode{
		Weight: node.Weight,
		Left:   t.toJSON(node.Left),
		Right:  t.toJSON(node.Right),
	}
}

func (t *Tree) fromJSON(jn *jsonNode) (NodeID, error) {
	if jn == nil {
		return NoNode, fmt.Errorf("%w: missing node", ErrInvalidInput)
	}

	node := Node{Symbol: InvalidSymbol, Weight: jn.Weight, Left: NoNode, Right: NoNode}
	switch {
	case jn.Symbol != nil && jn.Left == nil && jn.Right == nil:
		node.Symbol = *jn.Symbol

	case jn.Symbol == nil && jn.Left != nil && jn.Right != nil:
		left, err := t.fromJSON(jn.Left)
		if err != nil {
			return NoNode, err
		}
		right, err := t.fromJSON(jn.Right)
		if err != nil {
			return NoNode, err
		}
		node.Left, node.Right = left, right

	default:
		return NoNode, fmt.Errorf("%w: node must have either a symbol or two children", ErrInvalidInput)
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node)
	return id, nil
}

// }}}

// MarshalJSON fulfills json.Marshaler.  The tree is written as nested
// objects, with leaves carrying "symbol" and internal nodes carrying "left"
// and "right".
func (t *Tree) MarshalJSON() ([]byte, error) {
	if len(t.nodes) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(t.toJSON(t.root))
}

// UnmarshalJSON fulfills json.Unmarshaler.  The decoded tree must pass
// Validate.
func (t *Tree) UnmarshalJSON(raw []byte) error {
	var jn *jsonNode
	err := json.Unmarshal(raw, &jn)
	if err != nil {
		return err
	}

	var tmp Tree
	root, err := tmp.fromJSON(jn)
	if err != nil {
		return err
	}
	tmp.root = root

	err = tmp.Validate()
	if err != nil {
		return err
	}

	*t = tmp
	return nil
}

var (
	_ json.Marshaler   = (*Tree)(nil)
	_ json.Unmarshaler = (*Tree)(nil)
)
