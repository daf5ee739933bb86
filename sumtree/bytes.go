package sumtree

import (
	"encoding/binary"
	"hash"
	"math/big"
)

// HashWriteSum writes sum to a hasher as a SumBytes wide big-endian unsigned
// integer, most significant byte first.
//
// The caller must have checked the sum with CheckSum.
func HashWriteSum(hasher hash.Hash, sum *big.Int) {
	var b [SumBytes]byte
	sum.FillBytes(b[:])
	_, _ = hasher.Write(b[:])
}

// CheckSum returns an error if sum cannot be committed in SumBytes.
func CheckSum(sum *big.Int) error {
	if sum == nil {
		return ErrNilSum
	}
	if sum.Sign() < 0 {
		return ErrNegativeSum
	}
	if sum.BitLen() > SumBits {
		return ErrSumOverflow
	}
	return nil
}

func readU32BE(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func readU64BE(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

func writeU32BE(dst []byte, v uint32) { binary.BigEndian.PutUint32(dst, v) }
func writeU64BE(dst []byte, v uint64) { binary.BigEndian.PutUint64(dst, v) }
