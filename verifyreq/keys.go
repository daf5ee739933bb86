package verifyreq

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

// KeyEncoder produces the leafKey argument of the external verifier for the
// leaf at leafIndex in a tree of leafCount leaves.
//
// The bit layout of the key belongs to the verifier's contract, so callers
// always choose an encoder explicitly.
type KeyEncoder func(leafIndex, leafCount uint64) ([]byte, error)

const (
	KeyEncodingBigEndian   = "be"
	KeyEncodingLeftAligned = "left"

	MaxKeyWidth = 32
)

// BigEndianKey encodes the leaf index as a width byte big-endian unsigned
// integer, right aligned and zero padded on the left. With width 32 this is
// the uint256 layout.
func BigEndianKey(width int) (KeyEncoder, error) {
	if width < 1 || width > MaxKeyWidth {
		return nil, ErrKeyWidthInvalid
	}
	return func(leafIndex, _ uint64) ([]byte, error) {
		n := minimalBytes(leafIndex)
		if n > width {
			return nil, fmt.Errorf("%w: index=%d, width=%d", ErrKeyTooWide, leafIndex, width)
		}
		key := make([]byte, width)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], leafIndex)
		copy(key[width-n:], b[8-n:])
		return key, nil
	}, nil
}

// LeftAlignedKey encodes the minimal big-endian bytes of the leaf index (a
// single zero byte for index 0) at the start of a width byte key, zero padded
// on the right. With width 32 this is the bytes32 layout of a short byte
// string.
func LeftAlignedKey(width int) (KeyEncoder, error) {
	if width < 1 || width > MaxKeyWidth {
		return nil, ErrKeyWidthInvalid
	}
	return func(leafIndex, _ uint64) ([]byte, error) {
		n := minimalBytes(leafIndex)
		if n > width {
			return nil, fmt.Errorf("%w: index=%d, width=%d", ErrKeyTooWide, leafIndex, width)
		}
		key := make([]byte, width)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], leafIndex)
		copy(key, b[8-n:])
		return key, nil
	}, nil
}

// EncoderByName returns the named key encoder for the given width.
func EncoderByName(name string, width int) (KeyEncoder, error) {
	switch strings.ToLower(name) {
	case KeyEncodingBigEndian:
		return BigEndianKey(width)
	case KeyEncodingLeftAligned:
		return LeftAlignedKey(width)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyEncoding, name)
	}
}

// minimalBytes returns the number of bytes needed for v, at least one.
func minimalBytes(v uint64) int {
	n := (bits.Len64(v) + 7) / 8
	if n == 0 {
		return 1
	}
	return n
}
