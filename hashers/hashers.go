// Package hashers names the hash primitives a sum tree can be built with.
//
// A tree only verifies against the primitive it was built with. Keccak256 is
// the one an EVM verifier recomputes roots with.
package hashers

import (
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"
)

const (
	NameKeccak256 = "keccak256"
	NameSHA256    = "sha256"
)

// HashSize is the output width of every hasher in this package.
const HashSize = 32

var ErrUnknownHasher = errors.New("hashers: unknown hasher")

// Factory returns a fresh hash.Hash. A hash.Hash is stateful, so each
// goroutine building trees needs its own.
type Factory func() hash.Hash

// Keccak256 returns the legacy (pre-FIPS 202) Keccak-256 used by Ethereum.
func Keccak256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

// SHA256 returns a SHA-256 using the platform's accelerated implementation
// where one is available.
func SHA256() hash.Hash {
	return sha256.New()
}

var registry = map[string]Factory{
	NameKeccak256: Keccak256,
	NameSHA256:    SHA256,
}

// New returns the factory registered under name. Names are case insensitive.
func New(name string) (Factory, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownHasher, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the registered hasher names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
