package sumtree

import (
	"bytes"
	"hash"
	"math/big"
)

// CalcRoot computes only the root commitment for the leaves (sums[i], data[i]).
//
// The levels are reduced exactly as ConstructTree reduces them, but no node
// list or parent links are kept: each level is folded into the front of a
// single buffer. The returned Hash and Sum always equal those of
// ConstructTree(hasher, sums, data).Root().
//
// The returned node has no position. Its Index, Left, Right and Parent are
// NoIndex, except for a single leaf tree where the leaf itself is returned.
func CalcRoot(hasher hash.Hash, sums []*big.Int, data [][]byte) (Node, error) {
	if err := checkLeaves(sums, data); err != nil {
		return Node{}, err
	}

	if len(sums) == 1 {
		h, err := LeafDigest(hasher, sums[0], data[0])
		if err != nil {
			return Node{}, err
		}
		return newLeaf(0, h, new(big.Int).Set(sums[0]), bytes.Clone(data[0])), nil
	}

	type commitment struct {
		hash [HashBytes]byte
		sum  *big.Int
	}

	level := make([]commitment, len(sums))
	for i := range sums {
		h, err := LeafDigest(hasher, sums[i], data[i])
		if err != nil {
			return Node{}, err
		}
		level[i] = commitment{hash: h, sum: sums[i]}
	}

	for len(level) > 1 {
		pairs := len(level) / 2
		odd := len(level)%2 == 1
		carry := level[len(level)-1]

		next := level[:0]
		for k := 0; k < pairs; k++ {
			l, r := level[2*k], level[2*k+1]
			h, err := NodeDigest(hasher, l.sum, l.hash, r.sum, r.hash)
			if err != nil {
				return Node{}, err
			}
			next = append(next, commitment{hash: h, sum: new(big.Int).Add(l.sum, r.sum)})
		}
		if odd {
			next = append(next, carry)
		}
		level = next
	}

	return Node{
		Index:  NoIndex,
		Left:   NoIndex,
		Right:  NoIndex,
		Parent: NoIndex,
		Hash:   level[0].hash,
		Sum:    level[0].sum,
	}, nil
}
