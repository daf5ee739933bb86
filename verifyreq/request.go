package verifyreq

import (
	"bytes"
	"hash"
	"math/big"

	"github.com/forestrie/go-sumtree/sumtree"
)

// Request is the argument tuple of the external verifier:
//
//	verify(rootHash, rootSum, leafData, leafSum, proof, leafKey, leafCount)
//
// This package only assembles it. It never recomputes the root.
type Request struct {
	RootHash  [sumtree.HashBytes]byte
	RootSum   *big.Int
	LeafData  []byte
	LeafSum   *big.Int
	Proof     sumtree.Proof
	LeafKey   []byte
	LeafCount uint64
}

// NewRequest assembles the request for leafIndex from a node list built by
// sumtree.ConstructTree. The leaf data is taken from the node list.
func NewRequest(nodes sumtree.Nodes, leafIndex uint64, enc KeyEncoder) (Request, error) {
	if enc == nil {
		return Request{}, ErrKeyEncoderNotProvided
	}
	proof, err := sumtree.GetProof(nodes, leafIndex)
	if err != nil {
		return Request{}, err
	}
	root, _ := nodes.Root()
	leaf := nodes[leafIndex]

	return assemble(root, leaf.Sum, leaf.Data, proof, leafIndex, nodes.LeafCount(), enc)
}

// NewRequestFromStore assembles the request for leafIndex from an encoded node
// store. Stores do not keep leaf payloads, so the caller supplies leafData; it
// is checked against the stored leaf digest with hasher.
func NewRequestFromStore(
	hasher hash.Hash, v sumtree.StoreView, leafData []byte, leafIndex uint64, enc KeyEncoder,
) (Request, error) {
	if enc == nil {
		return Request{}, ErrKeyEncoderNotProvided
	}
	proof, err := v.Proof(leafIndex)
	if err != nil {
		return Request{}, err
	}
	leaf, err := v.Node(sumtree.Index(leafIndex))
	if err != nil {
		return Request{}, err
	}
	h, err := sumtree.LeafDigest(hasher, leaf.Sum, leafData)
	if err != nil {
		return Request{}, err
	}
	if h != leaf.Hash {
		return Request{}, ErrLeafDataMismatch
	}
	root, err := v.Root()
	if err != nil {
		return Request{}, err
	}

	return assemble(root, leaf.Sum, leafData, proof, leafIndex, v.LeafCount, enc)
}

func assemble(
	root sumtree.Node, leafSum *big.Int, leafData []byte,
	proof sumtree.Proof, leafIndex, leafCount uint64, enc KeyEncoder,
) (Request, error) {
	key, err := enc(leafIndex, leafCount)
	if err != nil {
		return Request{}, err
	}
	return Request{
		RootHash:  root.Hash,
		RootSum:   new(big.Int).Set(root.Sum),
		LeafData:  bytes.Clone(leafData),
		LeafSum:   new(big.Int).Set(leafSum),
		Proof:     proof,
		LeafKey:   key,
		LeafCount: leafCount,
	}, nil
}
