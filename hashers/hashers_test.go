package hashers_test

import (
	"encoding/hex"
	"testing"

	"github.com/forestrie/go-sumtree/hashers"
	"github.com/forestrie/go-sumtree/hashers/hasherstest"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	for _, name := range hashers.Names() {
		f, err := hashers.New(name)
		require.NoError(t, err)
		t.Run(name, func(t *testing.T) {
			hasherstest.TestHasherCompliance(t, hasherstest.HasherFactory(f))
		})
	}
}

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		// Keccak-256 of the empty string, as Ethereum's EmptyCodeHash.
		{hashers.NameKeccak256, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{hashers.NameSHA256, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := hashers.New(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, hex.EncodeToString(f().Sum(nil)))
		})
	}
}

func TestNew(t *testing.T) {
	_, err := hashers.New("KECCAK256")
	require.NoError(t, err)

	_, err = hashers.New("md5")
	require.ErrorIs(t, err, hashers.ErrUnknownHasher)

	require.Equal(t, []string{"keccak256", "sha256"}, hashers.Names())
}
