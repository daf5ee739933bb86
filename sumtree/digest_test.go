package sumtree

import (
	"crypto/sha1"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafDigestLayout(t *testing.T) {
	hasher := sha256.New()

	got, err := LeafDigest(hasher, big.NewInt(0x0102), []byte{0xAA, 0xBB})
	require.NoError(t, err)

	var want [HashBytes]byte
	buf := make([]byte, 0, 1+SumBytes+2)
	buf = append(buf, 0x00)
	sum := make([]byte, SumBytes)
	sum[SumBytes-2] = 0x01
	sum[SumBytes-1] = 0x02
	buf = append(buf, sum...)
	buf = append(buf, 0xAA, 0xBB)
	want = sha256.Sum256(buf)

	require.Equal(t, want, got)
}

func TestNodeDigestLayout(t *testing.T) {
	hasher := sha256.New()

	left := sha256.Sum256([]byte("left"))
	right := sha256.Sum256([]byte("right"))

	got, err := NodeDigest(hasher, big.NewInt(3), left, big.NewInt(7), right)
	require.NoError(t, err)

	buf := []byte{0x01}
	s := make([]byte, SumBytes)
	s[SumBytes-1] = 3
	buf = append(buf, s...)
	buf = append(buf, left[:]...)
	s = make([]byte, SumBytes)
	s[SumBytes-1] = 7
	buf = append(buf, s...)
	buf = append(buf, right[:]...)

	require.Equal(t, sha256.Sum256(buf), got)
}

func TestNodeDigestIsNotCommutative(t *testing.T) {
	hasher := sha256.New()
	a := sha256.Sum256([]byte("a"))
	b := sha256.Sum256([]byte("b"))

	ab, err := NodeDigest(hasher, big.NewInt(1), a, big.NewInt(2), b)
	require.NoError(t, err)
	ba, err := NodeDigest(hasher, big.NewInt(2), b, big.NewInt(1), a)
	require.NoError(t, err)

	require.NotEqual(t, ab, ba)
}

func TestDigestDomainSeparation(t *testing.T) {
	hasher := sha256.New()

	left := sha256.Sum256([]byte("left"))
	right := sha256.Sum256([]byte("right"))
	leftSum := big.NewInt(5)
	rightSum := big.NewInt(9)

	nodeHash, err := NodeDigest(hasher, leftSum, left, rightSum, right)
	require.NoError(t, err)

	// A leaf whose sum and data reproduce the node payload byte for byte.
	data := append([]byte{}, left[:]...)
	s := make([]byte, SumBytes)
	rightSum.FillBytes(s)
	data = append(data, s...)
	data = append(data, right[:]...)

	leafHash, err := LeafDigest(hasher, leftSum, data)
	require.NoError(t, err)

	require.NotEqual(t, nodeHash, leafHash)
}

func TestDigestDeterministic(t *testing.T) {
	h1, err := LeafDigest(sha256.New(), big.NewInt(42), []byte("payload"))
	require.NoError(t, err)
	h2, err := LeafDigest(sha256.New(), big.NewInt(42), []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	h3, err := LeafDigest(sha256.New(), big.NewInt(43), []byte("payload"))
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestDigestRejectsBadInput(t *testing.T) {
	hasher := sha256.New()
	var zero [HashBytes]byte

	_, err := LeafDigest(hasher, big.NewInt(-1), nil)
	require.ErrorIs(t, err, ErrNegativeSum)

	_, err = LeafDigest(hasher, nil, nil)
	require.ErrorIs(t, err, ErrNilSum)

	tooWide := new(big.Int).Lsh(big.NewInt(1), SumBits)
	_, err = LeafDigest(hasher, tooWide, nil)
	require.ErrorIs(t, err, ErrSumOverflow)

	_, err = NodeDigest(hasher, big.NewInt(1), zero, tooWide, zero)
	require.ErrorIs(t, err, ErrSumOverflow)

	maxSum := new(big.Int).Sub(tooWide, big.NewInt(1))
	_, err = LeafDigest(hasher, maxSum, nil)
	require.NoError(t, err)

	_, err = LeafDigest(sha1.New(), big.NewInt(1), nil)
	require.ErrorIs(t, err, ErrBadHashSize)
}
