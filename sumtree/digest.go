package sumtree

import (
	"hash"
	"math/big"
)

const (
	leafPrefix     = 0x00
	internalPrefix = 0x01
)

// LeafDigest computes:
//
//	H( 0x00 || sum_be32 || data )
func LeafDigest(hasher hash.Hash, sum *big.Int, data []byte) ([HashBytes]byte, error) {
	if err := CheckSum(sum); err != nil {
		return [HashBytes]byte{}, err
	}
	hasher.Reset()
	_, _ = hasher.Write([]byte{leafPrefix})
	HashWriteSum(hasher, sum)
	_, _ = hasher.Write(data)
	return hashSum(hasher)
}

// NodeDigest computes:
//
//	H( 0x01 || leftSum_be32 || leftHash[32] || rightSum_be32 || rightHash[32] )
//
// The children are not interchangeable.
func NodeDigest(
	hasher hash.Hash,
	leftSum *big.Int, left [HashBytes]byte,
	rightSum *big.Int, right [HashBytes]byte,
) ([HashBytes]byte, error) {
	if err := CheckSum(leftSum); err != nil {
		return [HashBytes]byte{}, err
	}
	if err := CheckSum(rightSum); err != nil {
		return [HashBytes]byte{}, err
	}
	hasher.Reset()
	_, _ = hasher.Write([]byte{internalPrefix})
	HashWriteSum(hasher, leftSum)
	_, _ = hasher.Write(left[:])
	HashWriteSum(hasher, rightSum)
	_, _ = hasher.Write(right[:])
	return hashSum(hasher)
}

func hashSum(hasher hash.Hash) ([HashBytes]byte, error) {
	var out [HashBytes]byte
	sum := hasher.Sum(out[:0])
	if len(sum) != HashBytes {
		return [HashBytes]byte{}, ErrBadHashSize
	}
	copy(out[:], sum)
	return out, nil
}
