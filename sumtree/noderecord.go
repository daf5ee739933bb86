package sumtree

import (
	"bytes"
	"fmt"
	"math/big"
)

const (
	NodeStoreMagicV1   = "SMT1"
	NodeStoreVersionV1 = 1

	// NodeStoreHeaderBytes is the size of the header preceding the records.
	//
	// Layout:
	//   - magic[4] "SMT1"
	//   - version_u8
	//   - sumBytes_u8
	//   - hashBytes_u8
	//   - reserved_u8
	//   - leafCount_be8
	//   - nodeCount_be8
	//   - reserved[8]
	NodeStoreHeaderBytes = 32

	// NodeRecordBytes is the fixed byte width of a node record.
	//
	// Layout:
	//   - kind_u8, reserved[3]
	//   - left_be4, right_be4, parent_be4 (NoIndex when absent)
	//   - reserved[16]
	//   - sum_be32
	//   - hash[32]
	NodeRecordBytes = 96

	nodeLeftOff   = 4
	nodeRightOff  = 8
	nodeParentOff = 12
	nodeSumOff    = 32
	nodeHashOff   = nodeSumOff + SumBytes
)

// NodeStoreBytes returns the encoded size of a tree with leafCount leaves.
func NodeStoreBytes(leafCount uint64) uint64 {
	return NodeStoreHeaderBytes + NodeCount(leafCount)*NodeRecordBytes
}

// NodeRecordOffset returns the byte offset of record i within the record
// region that follows the header.
func NodeRecordOffset(i Index) uint64 {
	return uint64(i) * NodeRecordBytes
}

func nodeRec(records []byte, i Index) []byte {
	off := NodeRecordOffset(i)
	return records[off : off+NodeRecordBytes]
}

// NodeKindAt returns the kind field of record i.
func NodeKindAt(records []byte, i Index) NodeKind {
	return NodeKind(nodeRec(records, i)[0])
}

// NodeLeft returns the left child of record i, NoIndex for leaves.
func NodeLeft(records []byte, i Index) Index {
	return Index(readU32BE(nodeRec(records, i)[nodeLeftOff:]))
}

// NodeRight returns the right child of record i, NoIndex for leaves.
func NodeRight(records []byte, i Index) Index {
	return Index(readU32BE(nodeRec(records, i)[nodeRightOff:]))
}

// NodeParent returns the parent of record i, NoIndex for the root.
func NodeParent(records []byte, i Index) Index {
	return Index(readU32BE(nodeRec(records, i)[nodeParentOff:]))
}

// NodeSum returns the stored sum of record i.
func NodeSum(records []byte, i Index) *big.Int {
	return new(big.Int).SetBytes(nodeRec(records, i)[nodeSumOff : nodeSumOff+SumBytes])
}

// NodeHash returns the stored digest of record i.
func NodeHash(records []byte, i Index) [HashBytes]byte {
	var out [HashBytes]byte
	copy(out[:], nodeRec(records, i)[nodeHashOff:nodeHashOff+HashBytes])
	return out
}

// NodeWrite writes n as record n.Index in-place. Leaf data is not stored.
func NodeWrite(records []byte, n Node) {
	rec := nodeRec(records, n.Index)
	clear(rec)
	rec[0] = byte(n.Kind())
	writeU32BE(rec[nodeLeftOff:], uint32(n.Left))
	writeU32BE(rec[nodeRightOff:], uint32(n.Right))
	writeU32BE(rec[nodeParentOff:], uint32(n.Parent))
	n.Sum.FillBytes(rec[nodeSumOff : nodeSumOff+SumBytes])
	copy(rec[nodeHashOff:nodeHashOff+HashBytes], n.Hash[:])
}

// EncodeNodeStore encodes nodes into dst, which must be at least
// NodeStoreBytes(nodes.LeafCount()) long.
func EncodeNodeStore(dst []byte, nodes Nodes) error {
	leafCount := nodes.LeafCount()
	if err := CheckLeafCount(leafCount); err != nil {
		return err
	}
	if uint64(len(nodes)) != NodeCount(leafCount) {
		return fmt.Errorf("%w: %d nodes is not a complete tree", ErrNodeStoreBadSize, len(nodes))
	}
	want := NodeStoreBytes(leafCount)
	if uint64(len(dst)) < want {
		return fmt.Errorf("%w: want=%d, got=%d", ErrNodeStoreBadSize, want, len(dst))
	}

	hdr := dst[:NodeStoreHeaderBytes]
	clear(hdr)
	copy(hdr[0:4], []byte(NodeStoreMagicV1))
	hdr[4] = NodeStoreVersionV1
	hdr[5] = SumBytes
	hdr[6] = HashBytes
	writeU64BE(hdr[8:16], leafCount)
	writeU64BE(hdr[16:24], uint64(len(nodes)))

	records := dst[NodeStoreHeaderBytes:want]
	for i, n := range nodes {
		if n.Index != Index(i) {
			return fmt.Errorf("%w: node %d has index %d", ErrInvalidNodeIndex, i, n.Index)
		}
		if err := CheckSum(n.Sum); err != nil {
			return err
		}
		NodeWrite(records, n)
	}
	return nil
}

// DecodeNodeStore decodes an encoded store into a node list. Leaf Data is nil
// on every returned node.
func DecodeNodeStore(src []byte) (Nodes, error) {
	v, err := NewStoreView(src)
	if err != nil {
		return nil, err
	}
	nodes := make(Nodes, v.NodeCount)
	for i := range nodes {
		n, err := v.Node(Index(i))
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	if err := checkLinks(nodes, v.LeafCount); err != nil {
		return nil, err
	}
	return nodes, nil
}

// checkLinks rejects node lists whose links could not have come from
// ConstructTree. Leaves come first and have no children, children always
// precede their parent, every parent names the node as a child and only the
// last node is the root. Walks over a list that passes never leave it.
func checkLinks(nodes Nodes, leafCount uint64) error {
	last := Index(len(nodes) - 1)
	for i := range nodes {
		n := nodes[i]
		ref := Index(i)

		if uint64(i) < leafCount {
			if n.Left != NoIndex || n.Right != NoIndex {
				return fmt.Errorf("%w: leaf %d has children", ErrInvalidNodeIndex, i)
			}
		} else if n.Left >= ref || n.Right >= ref || n.Left == n.Right {
			return fmt.Errorf("%w: node %d children %d, %d", ErrInvalidNodeIndex, i, n.Left, n.Right)
		}

		if ref == last {
			if n.Parent != NoIndex {
				return fmt.Errorf("%w: root %d has parent %d", ErrInvalidNodeIndex, i, n.Parent)
			}
			continue
		}
		if n.Parent == NoIndex || n.Parent <= ref || n.Parent > last {
			return fmt.Errorf("%w: parent %d of %d", ErrInvalidNodeIndex, n.Parent, i)
		}
		p := nodes[n.Parent]
		if p.Left != ref && p.Right != ref {
			return fmt.Errorf("%w: parent %d does not link %d", ErrInvalidNodeIndex, n.Parent, i)
		}
	}
	return nil
}

// decodeHeader returns (leafCount, nodeCount) from an encoded store header.
func decodeHeader(src []byte) (uint64, uint64, error) {
	if len(src) < NodeStoreHeaderBytes {
		return 0, 0, ErrNodeStoreBadSize
	}
	if !bytes.Equal(src[0:4], []byte(NodeStoreMagicV1)) {
		return 0, 0, ErrNodeStoreBadMagic
	}
	if src[4] != NodeStoreVersionV1 {
		return 0, 0, ErrNodeStoreBadVersion
	}
	if src[5] != SumBytes || src[6] != HashBytes {
		return 0, 0, fmt.Errorf("%w: sum=%d, hash=%d", ErrNodeStoreBadVersion, src[5], src[6])
	}
	leafCount := readU64BE(src[8:16])
	nodeCount := readU64BE(src[16:24])
	if err := CheckLeafCount(leafCount); err != nil {
		return 0, 0, err
	}
	if nodeCount != NodeCount(leafCount) {
		return 0, 0, fmt.Errorf("%w: leaves=%d, nodes=%d", ErrNodeStoreBadSize, leafCount, nodeCount)
	}
	return leafCount, nodeCount, nil
}
