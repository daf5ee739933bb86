package sumtree

import "math/bits"

// MaxLeafCount is the largest leaf count whose 2n-1 nodes are all
// addressable by an Index distinct from NoIndex.
const MaxLeafCount = uint64(1) << 31

// NodeCount returns the number of nodes in a sum tree with leafCount leaves.
// Every internal node consumes two nodes of the level below and carried nodes
// are never copied, so the count is always 2N-1.
func NodeCount(leafCount uint64) uint64 {
	if leafCount == 0 {
		return 0
	}
	return 2*leafCount - 1
}

// CheckLeafCount checks whether leafCount can be built and addressed.
func CheckLeafCount(leafCount uint64) error {
	if leafCount == 0 {
		return ErrEmptyInput
	}
	if leafCount > MaxLeafCount {
		return ErrLeafCountDoesNotFit32
	}
	return nil
}

// LevelSizes returns the number of nodes on each level, leaves first and the
// root level last. A level of odd size carries its trailing node into the
// next level, so each level has ceil(prev/2) entries.
//
// For leafCount 5 this is [5, 3, 2, 1].
func LevelSizes(leafCount uint64) []uint64 {
	if leafCount == 0 {
		return nil
	}
	sizes := make([]uint64, 0, ProofLenMax(leafCount)+1)
	for size := leafCount; ; size = (size + 1) >> 1 {
		sizes = append(sizes, size)
		if size == 1 {
			return sizes
		}
	}
}

// ProofLenMax returns ceil(log2(leafCount)), the number of levels above the
// leaves and so the longest possible proof. Leaves that are carried forward
// skip levels and have shorter proofs.
//
// NOTE: leafCount must be > 0.
func ProofLenMax(leafCount uint64) int {
	if leafCount <= 1 {
		return 0
	}
	return bits.Len64(leafCount - 1)
}
