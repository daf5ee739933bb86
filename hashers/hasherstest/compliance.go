package hasherstest

import (
	"hash"
	"math/big"
	"testing"

	"github.com/forestrie/go-sumtree/hashers"
	"github.com/forestrie/go-sumtree/sumtree"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() hash.Hash

// TestHasherCompliance checks that f produces hashers a sum tree can be built
// with.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("digest width", func(t *testing.T) {
		t.Parallel()

		h := f()
		require.Equal(t, hashers.HashSize, h.Size())
		require.Equal(t, sumtree.HashBytes, hashers.HashSize)

		_, err := sumtree.LeafDigest(h, big.NewInt(1), []byte("data"))
		require.NoError(t, err)
	})

	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		d1, err := sumtree.LeafDigest(f(), big.NewInt(7), []byte("deterministic_data"))
		require.NoError(t, err)
		d2, err := sumtree.LeafDigest(f(), big.NewInt(7), []byte("deterministic_data"))
		require.NoError(t, err)

		require.Equal(t, d1, d2)
	})

	t.Run("hasher is reusable", func(t *testing.T) {
		t.Parallel()

		h := f()
		d1, err := sumtree.LeafDigest(h, big.NewInt(7), []byte("a"))
		require.NoError(t, err)
		_, err = sumtree.LeafDigest(h, big.NewInt(8), []byte("b"))
		require.NoError(t, err)
		d2, err := sumtree.LeafDigest(h, big.NewInt(7), []byte("a"))
		require.NoError(t, err)

		require.Equal(t, d1, d2)
	})

	t.Run("leaf respects sum", func(t *testing.T) {
		t.Parallel()

		d1, err := sumtree.LeafDigest(f(), big.NewInt(1), []byte("fixed_data"))
		require.NoError(t, err)
		d2, err := sumtree.LeafDigest(f(), big.NewInt(2), []byte("fixed_data"))
		require.NoError(t, err)

		require.NotEqual(t, d1, d2)
	})

	t.Run("roots agree", func(t *testing.T) {
		t.Parallel()

		sums := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
		data := [][]byte{{0}, {1}, {2}}

		nodes, err := sumtree.ConstructTree(f(), sums, data)
		require.NoError(t, err)
		root, err := sumtree.CalcRoot(f(), sums, data)
		require.NoError(t, err)

		want, _ := nodes.Root()
		require.Equal(t, want.Hash, root.Hash)
	})
}
