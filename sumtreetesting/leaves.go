package sumtreetesting

import (
	"math/big"

	"github.com/google/uuid"
)

// NumberedLeaves returns n leaves where leaf i has sum i and data the minimal
// big-endian bytes of i (a single zero byte for 0).
func NumberedLeaves(n int) ([]*big.Int, [][]byte) {
	sums := make([]*big.Int, n)
	data := make([][]byte, n)
	for i := 0; i < n; i++ {
		sums[i] = big.NewInt(int64(i))
		data[i] = NumberedData(uint64(i))
	}
	return sums, data
}

// NumberedData returns the minimal big-endian bytes of i.
func NumberedData(i uint64) []byte {
	b := new(big.Int).SetUint64(i).Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

// SumsOf converts values to sums.
func SumsOf(values ...int64) []*big.Int {
	sums := make([]*big.Int, len(values))
	for i, v := range values {
		sums[i] = big.NewInt(v)
	}
	return sums
}

// RandomLeaves returns n leaves with sums drawn from [0, MaxSum) and a random
// uuid as each payload. The output is fixed by the configured seed.
func (c *TestContext) RandomLeaves(n int) ([]*big.Int, [][]byte) {
	sums := make([]*big.Int, n)
	data := make([][]byte, n)
	for i := 0; i < n; i++ {
		sums[i] = big.NewInt(c.rng.Int63n(c.Cfg.MaxSum))
		id, err := uuid.NewRandomFromReader(c.rng)
		if err != nil {
			c.T.Fatalf("failed to generate leaf payload: %v", err)
		}
		data[i] = id[:]
	}
	return sums, data
}

// Sum returns the total of sums.
func Sum(sums []*big.Int) *big.Int {
	total := new(big.Int)
	for _, s := range sums {
		total.Add(total, s)
	}
	return total
}
