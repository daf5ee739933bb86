package sumtree

import "errors"

// HashBytes is the fixed width of node digests.
const HashBytes = 32

// SumBytes is the fixed width of a sum in the hashed encoding.
//
// Sums are committed as 256 bit big-endian unsigned integers, the uint256
// layout an EVM verifier reads with abi.encodePacked.
const SumBytes = 32

// SumBits is SumBytes in bits.
const SumBits = SumBytes * 8

// Index addresses a node in the flattened node list.
type Index uint32

// NoIndex marks an absent parent or child.
const NoIndex = ^Index(0)

type NodeKind uint8

const (
	KindLeaf     NodeKind = 1
	KindInternal NodeKind = 2
)

var (
	ErrEmptyInput            = errors.New("sumtree: empty input")
	ErrLengthMismatch        = errors.New("sumtree: sums and data lengths differ")
	ErrIndexOutOfBounds      = errors.New("sumtree: leaf index out of bounds")
	ErrNilSum                = errors.New("sumtree: sum is nil")
	ErrNegativeSum           = errors.New("sumtree: sum must not be negative")
	ErrSumOverflow           = errors.New("sumtree: sum does not fit 256 bits")
	ErrBadHashSize           = errors.New("sumtree: hasher output must be 32 bytes")
	ErrLeafCountDoesNotFit32 = errors.New("sumtree: node count does not fit in uint32")
	ErrNodeStoreBadSize      = errors.New("sumtree: node store buffer size invalid")
	ErrNodeStoreBadMagic     = errors.New("sumtree: node store magic invalid")
	ErrNodeStoreBadVersion   = errors.New("sumtree: node store version invalid")
	ErrInvalidNodeKind       = errors.New("sumtree: invalid node kind")
	ErrInvalidNodeIndex      = errors.New("sumtree: invalid node index")
)
