package sumtree

import (
	"fmt"
	"math/big"
)

// Proof is the sibling path for one leaf. SideNodes[i] and NodeSums[i] are
// the digest and sum of the sibling met at step i, ordered leaf -> root.
type Proof struct {
	SideNodes [][HashBytes]byte
	NodeSums  []*big.Int
}

// Len returns the number of siblings in the proof.
func (p Proof) Len() int {
	return len(p.SideNodes)
}

func (p *Proof) push(h [HashBytes]byte, sum *big.Int) {
	p.SideNodes = append(p.SideNodes, h)
	p.NodeSums = append(p.NodeSums, new(big.Int).Set(sum))
}

// GetProof returns the proof for leaf id by following parent links from the
// leaf to the root. At each step the child we did not come from is the
// sibling.
//
// The proof for the only leaf of a single leaf tree is empty.
func GetProof(nodes Nodes, id uint64) (Proof, error) {
	if id >= nodes.LeafCount() {
		return Proof{}, fmt.Errorf("%w: id=%d, leaves=%d", ErrIndexOutOfBounds, id, nodes.LeafCount())
	}

	proof := Proof{
		SideNodes: make([][HashBytes]byte, 0, ProofLenMax(nodes.LeafCount())),
		NodeSums:  make([]*big.Int, 0, ProofLenMax(nodes.LeafCount())),
	}

	prev := Index(id)
	for cur := nodes[prev].Parent; cur != NoIndex; prev, cur = cur, nodes[cur].Parent {
		sib := nodes[cur].Left
		if sib == prev {
			sib = nodes[cur].Right
		}
		proof.push(nodes[sib].Hash, nodes[sib].Sum)
	}
	return proof, nil
}
