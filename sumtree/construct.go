package sumtree

import (
	"bytes"
	"fmt"
	"hash"
	"math/big"
)

// ConstructTree builds the full node list for the leaves (sums[i], data[i]).
//
// Each level pairs its nodes from the front. When a level has odd length its
// trailing node is carried into the next level as is: it keeps its index and
// digest and acquires a parent on the first level where it pairs. The carried
// node is always the last entry of the next level.
//
// For three leaves the result is
//
//	    4
//	   / \
//	  3   \
//	 / \   \
//	0   1   2
//
// and for five leaves
//
//	          8
//	        /   \
//	       7     \
//	     /   \    \
//	    5     6    \
//	   / \   / \    \
//	  0   1 2   3    4
func ConstructTree(hasher hash.Hash, sums []*big.Int, data [][]byte) (Nodes, error) {
	if err := checkLeaves(sums, data); err != nil {
		return nil, err
	}

	b := builder{
		hasher: hasher,
		nodes:  make(Nodes, 0, NodeCount(uint64(len(sums)))),
	}

	level := make([]Index, len(sums))
	for i := range sums {
		ref, err := b.emitLeaf(sums[i], data[i])
		if err != nil {
			return nil, err
		}
		level[i] = ref
	}

	for len(level) > 1 {
		// The next level is written over the front of the current one. Entry k
		// is only written after entries 2k and 2k+1 have been read.
		pairs := len(level) / 2
		odd := len(level)%2 == 1
		carry := level[len(level)-1]

		next := level[:0]
		for k := 0; k < pairs; k++ {
			ref, err := b.emitInternal(level[2*k], level[2*k+1])
			if err != nil {
				return nil, err
			}
			next = append(next, ref)
		}
		if odd {
			next = append(next, carry)
		}
		level = next
	}

	return b.nodes, nil
}

type builder struct {
	hasher hash.Hash
	nodes  Nodes
}

func (b *builder) emitLeaf(sum *big.Int, data []byte) (Index, error) {
	h, err := LeafDigest(b.hasher, sum, data)
	if err != nil {
		return NoIndex, err
	}
	ref := Index(len(b.nodes))
	b.nodes = append(b.nodes, newLeaf(ref, h, new(big.Int).Set(sum), bytes.Clone(data)))
	return ref, nil
}

func (b *builder) emitInternal(left, right Index) (Index, error) {
	l, r := &b.nodes[left], &b.nodes[right]

	h, err := NodeDigest(b.hasher, l.Sum, l.Hash, r.Sum, r.Hash)
	if err != nil {
		return NoIndex, err
	}
	sum := new(big.Int).Add(l.Sum, r.Sum)
	if sum.BitLen() > SumBits {
		return NoIndex, ErrSumOverflow
	}

	ref := Index(len(b.nodes))
	l.Parent = ref
	r.Parent = ref
	b.nodes = append(b.nodes, Node{
		Index:  ref,
		Left:   left,
		Right:  right,
		Parent: NoIndex,
		Hash:   h,
		Sum:    sum,
	})
	return ref, nil
}

// checkLeaves validates the leaf input before any node is built. The total of
// all sums bounds every internal sum, so checking it rules out overflow
// during construction.
func checkLeaves(sums []*big.Int, data [][]byte) error {
	if len(sums) != len(data) {
		return fmt.Errorf("%w: sums=%d, data=%d", ErrLengthMismatch, len(sums), len(data))
	}
	if err := CheckLeafCount(uint64(len(sums))); err != nil {
		return err
	}
	total := new(big.Int)
	for i, s := range sums {
		if err := CheckSum(s); err != nil {
			return fmt.Errorf("%w: leaf %d", err, i)
		}
		total.Add(total, s)
	}
	if total.BitLen() > SumBits {
		return fmt.Errorf("%w: total of leaf sums", ErrSumOverflow)
	}
	return nil
}
