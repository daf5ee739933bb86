package main

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLeaves(t *testing.T) {
	csv := "sum,data\n" +
		"0,0x00\n" +
		"7,cafe\n" +
		"115792089237316195423570985008687907853269984665640564039457584007913129639935,0x\n"

	sums, data, err := readLeaves(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, sums, 3)

	maxSum := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	assert.Zero(t, sums[0].Sign())
	assert.Zero(t, sums[1].Cmp(big.NewInt(7)))
	assert.Zero(t, sums[2].Cmp(maxSum))
	assert.Equal(t, []byte{0x00}, data[0])
	assert.Equal(t, []byte{0xca, 0xfe}, data[1])
	assert.Empty(t, data[2])
}

func TestReadLeavesErrors(t *testing.T) {
	for name, csv := range map[string]string{
		"bad sum":  "sum,data\nseven,00\n",
		"bad data": "sum,data\n7,0xzz\n",
		"odd hex":  "sum,data\n7,abc\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := readLeaves(strings.NewReader(csv))
			require.Error(t, err)
		})
	}
}

func TestReadLeafFile(t *testing.T) {
	path := writeTestFile(t, "leaves.csv", "sum,data\n3,0x0a0b\n4,0c\n")

	sums, data, err := readLeafFile(path)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Zero(t, sums[0].Cmp(big.NewInt(3)))
	assert.Zero(t, sums[1].Cmp(big.NewInt(4)))
	assert.Equal(t, [][]byte{{0x0a, 0x0b}, {0x0c}}, data)

	bad := writeTestFile(t, "bad.csv", "sum,data\nseven,00\n")
	_, _, err = readLeafFile(bad)
	require.ErrorContains(t, err, bad)

	_, _, err = readLeafFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
