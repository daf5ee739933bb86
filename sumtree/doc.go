package sumtree

/*

# Merkle sum tree primitives

This package builds binary Merkle sum trees: every node commits to both the
digest and the arithmetic sum of its subtree. It is written as functional
primitives:

- small, composable functions
- the hash.Hash is supplied by the caller
- a flat node list addressed by index, no pointers between nodes
- explicit byte layouts for anything persisted

## Hashing

Leaves and internal nodes are domain separated by a one byte prefix:

	leaf     = H( 0x00 || sum_be32 || data )
	internal = H( 0x01 || leftSum_be32 || leftHash || rightSum_be32 || rightHash )

Sums are non-negative and committed as 256 bit big-endian integers, so they
are carried as *big.Int and checked against that width on input.

## Shape

Levels are paired from the front. The trailing node of an odd level is carried
unchanged into the next level, keeping its index and digest, rather than being
duplicated. A carried node can ride up several levels before it pairs. The
external verifier recomputes the root from exactly this shape.

For n leaves the node list has 2n-1 entries: leaves 0..n-1 in input order,
then internal nodes bottom-up, left to right, with the root last.

## Proofs

GetProof walks parent links from a leaf to the root collecting the sibling
digest and sum at each step. Proofs are ordered leaf -> root and are at most
ceil(log2(n)) long.

This package does not verify proofs. It produces the material an external
verifier consumes, see `verifyreq`.

## Node store

A built tree can be encoded into a fixed-width node store (see noderecord.go)
and proofs read back through a StoreView without rebuilding.

*/
