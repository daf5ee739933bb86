package verifyreq

import (
	"fmt"
	"math/big"

	"github.com/forestrie/go-sumtree/sumtree"
	"github.com/fxamacker/cbor/v2"
)

// Codec encodes requests as deterministic CBOR, so equal requests always
// encode to equal bytes.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

// requestWire is the encoded form of Request. Digests are 32 byte strings and
// sums are 32 byte big-endian strings, the widths the leaf and node digests
// commit to.
type requestWire struct {
	RootHash  []byte   `cbor:"1,keyasint"`
	RootSum   []byte   `cbor:"2,keyasint"`
	LeafData  []byte   `cbor:"3,keyasint"`
	LeafSum   []byte   `cbor:"4,keyasint"`
	SideNodes [][]byte `cbor:"5,keyasint"`
	NodeSums  [][]byte `cbor:"6,keyasint"`
	LeafKey   []byte   `cbor:"7,keyasint"`
	LeafCount uint64   `cbor:"8,keyasint"`
}

// MarshalRequest encodes r.
func (c Codec) MarshalRequest(r Request) ([]byte, error) {
	if len(r.Proof.SideNodes) != len(r.Proof.NodeSums) {
		return nil, fmt.Errorf("%w: %d side nodes, %d sums", ErrRequestMalformed, len(r.Proof.SideNodes), len(r.Proof.NodeSums))
	}

	w := requestWire{
		RootHash:  r.RootHash[:],
		LeafData:  r.LeafData,
		LeafKey:   r.LeafKey,
		LeafCount: r.LeafCount,
		SideNodes: make([][]byte, len(r.Proof.SideNodes)),
		NodeSums:  make([][]byte, len(r.Proof.NodeSums)),
	}
	var err error
	if w.RootSum, err = sumBytes(r.RootSum); err != nil {
		return nil, err
	}
	if w.LeafSum, err = sumBytes(r.LeafSum); err != nil {
		return nil, err
	}
	for i := range r.Proof.SideNodes {
		w.SideNodes[i] = r.Proof.SideNodes[i][:]
		if w.NodeSums[i], err = sumBytes(r.Proof.NodeSums[i]); err != nil {
			return nil, err
		}
	}
	return c.enc.Marshal(&w)
}

// UnmarshalRequest decodes a request produced by MarshalRequest.
func (c Codec) UnmarshalRequest(data []byte) (Request, error) {
	var w requestWire
	if err := c.dec.Unmarshal(data, &w); err != nil {
		return Request{}, err
	}
	if len(w.SideNodes) != len(w.NodeSums) {
		return Request{}, fmt.Errorf("%w: %d side nodes, %d sums", ErrRequestMalformed, len(w.SideNodes), len(w.NodeSums))
	}

	r := Request{
		LeafData:  w.LeafData,
		LeafKey:   w.LeafKey,
		LeafCount: w.LeafCount,
		Proof: sumtree.Proof{
			SideNodes: make([][sumtree.HashBytes]byte, len(w.SideNodes)),
			NodeSums:  make([]*big.Int, len(w.NodeSums)),
		},
	}
	var err error
	if r.RootHash, err = digest(w.RootHash); err != nil {
		return Request{}, err
	}
	if r.RootSum, err = sum(w.RootSum); err != nil {
		return Request{}, err
	}
	if r.LeafSum, err = sum(w.LeafSum); err != nil {
		return Request{}, err
	}
	for i := range w.SideNodes {
		if r.Proof.SideNodes[i], err = digest(w.SideNodes[i]); err != nil {
			return Request{}, err
		}
		if r.Proof.NodeSums[i], err = sum(w.NodeSums[i]); err != nil {
			return Request{}, err
		}
	}
	return r, nil
}

func sumBytes(s *big.Int) ([]byte, error) {
	if err := sumtree.CheckSum(s); err != nil {
		return nil, err
	}
	b := make([]byte, sumtree.SumBytes)
	s.FillBytes(b)
	return b, nil
}

func sum(b []byte) (*big.Int, error) {
	if len(b) != sumtree.SumBytes {
		return nil, fmt.Errorf("%w: sum is %d bytes", ErrRequestMalformed, len(b))
	}
	return new(big.Int).SetBytes(b), nil
}

func digest(b []byte) ([sumtree.HashBytes]byte, error) {
	var out [sumtree.HashBytes]byte
	if len(b) != sumtree.HashBytes {
		return out, fmt.Errorf("%w: digest is %d bytes", ErrRequestMalformed, len(b))
	}
	copy(out[:], b)
	return out, nil
}
