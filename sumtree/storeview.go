package sumtree

import (
	"fmt"
	"math/big"
)

// StoreView is a read-only view over an encoded node store. Proofs are read
// directly from the records without decoding the whole tree.
type StoreView struct {
	LeafCount uint64
	NodeCount uint64
	Records   []byte
}

// NewStoreView validates the header of data and slices out the records.
func NewStoreView(data []byte) (StoreView, error) {
	leafCount, nodeCount, err := decodeHeader(data)
	if err != nil {
		return StoreView{}, err
	}
	want := NodeStoreBytes(leafCount)
	if uint64(len(data)) < want {
		return StoreView{}, fmt.Errorf(
			"%w: bad node store size: want=%d, got=%d",
			ErrNodeStoreBadSize, want, len(data),
		)
	}
	return StoreView{
		LeafCount: leafCount,
		NodeCount: nodeCount,
		Records:   data[NodeStoreHeaderBytes:want],
	}, nil
}

// Node decodes record i. Data is always nil.
func (v StoreView) Node(i Index) (Node, error) {
	if uint64(i) >= v.NodeCount {
		return Node{}, fmt.Errorf("%w: %d of %d", ErrInvalidNodeIndex, i, v.NodeCount)
	}
	kind := NodeKindAt(v.Records, i)
	if kind != KindLeaf && kind != KindInternal {
		return Node{}, fmt.Errorf("%w: %d at %d", ErrInvalidNodeKind, kind, i)
	}
	return Node{
		Index:  i,
		Left:   NodeLeft(v.Records, i),
		Right:  NodeRight(v.Records, i),
		Parent: NodeParent(v.Records, i),
		Hash:   NodeHash(v.Records, i),
		Sum:    NodeSum(v.Records, i),
	}, nil
}

// Root returns the last record.
func (v StoreView) Root() (Node, error) {
	return v.Node(Index(v.NodeCount - 1))
}

// Proof returns the same proof GetProof returns for the decoded tree.
func (v StoreView) Proof(id uint64) (Proof, error) {
	if id >= v.LeafCount {
		return Proof{}, fmt.Errorf("%w: id=%d, leaves=%d", ErrIndexOutOfBounds, id, v.LeafCount)
	}

	maxLen := ProofLenMax(v.LeafCount)
	proof := Proof{
		SideNodes: make([][HashBytes]byte, 0, maxLen),
		NodeSums:  make([]*big.Int, 0, maxLen),
	}
	prev := Index(id)
	for cur := v.parent(prev); cur != NoIndex; prev, cur = cur, v.parent(cur) {
		if proof.Len() >= maxLen || uint64(cur) >= v.NodeCount || NodeKindAt(v.Records, cur) != KindInternal {
			return Proof{}, fmt.Errorf("%w: parent %d of %d", ErrInvalidNodeIndex, cur, prev)
		}
		sib := NodeLeft(v.Records, cur)
		if sib == prev {
			sib = NodeRight(v.Records, cur)
		}
		if uint64(sib) >= v.NodeCount {
			return Proof{}, fmt.Errorf("%w: sibling %d of %d", ErrInvalidNodeIndex, sib, prev)
		}
		proof.push(NodeHash(v.Records, sib), NodeSum(v.Records, sib))
	}
	return proof, nil
}

func (v StoreView) parent(i Index) Index {
	return NodeParent(v.Records, i)
}
