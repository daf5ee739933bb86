package sumtree

import "math/big"

// Node is one vertex of a sum tree.
//
// Left, Right and Parent are positions in the owning Nodes list, or NoIndex.
// After construction only Parent is ever written, once, when the parent is
// created.
type Node struct {
	Index  Index
	Left   Index
	Right  Index
	Parent Index

	Hash [HashBytes]byte
	Sum  *big.Int

	// Data is the raw leaf payload. It is nil for internal nodes.
	Data []byte
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoIndex && n.Right == NoIndex
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.Parent == NoIndex
}

// Kind returns the record kind for n.
func (n Node) Kind() NodeKind {
	if n.IsLeaf() {
		return KindLeaf
	}
	return KindInternal
}

func newLeaf(i Index, h [HashBytes]byte, sum *big.Int, data []byte) Node {
	return Node{
		Index:  i,
		Left:   NoIndex,
		Right:  NoIndex,
		Parent: NoIndex,
		Hash:   h,
		Sum:    sum,
		Data:   data,
	}
}

// Nodes is the flattened node list produced by ConstructTree.
//
// Leaves occupy 0..n-1 in input order. Internal nodes follow in bottom-up,
// left-to-right creation order and the root is last.
type Nodes []Node

// Root returns the last node, which is the root for a list built by
// ConstructTree. ok is false for an empty list.
func (ns Nodes) Root() (Node, bool) {
	if len(ns) == 0 {
		return Node{}, false
	}
	return ns[len(ns)-1], true
}

// LeafCount returns n for a list of 2n-1 nodes.
func (ns Nodes) LeafCount() uint64 {
	if len(ns) == 0 {
		return 0
	}
	return (uint64(len(ns)) + 1) / 2
}

// Sibling returns the other child of i's parent. ok is false for the root.
func (ns Nodes) Sibling(i Index) (Index, bool) {
	p := ns[i].Parent
	if p == NoIndex {
		return NoIndex, false
	}
	if ns[p].Left == i {
		return ns[p].Right, true
	}
	return ns[p].Left, true
}
