package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forestrie/go-sumtree/hashers"
	"github.com/forestrie/go-sumtree/sumstore"
	"github.com/forestrie/go-sumtree/sumtree"
	"github.com/forestrie/go-sumtree/sumtreetesting"
	"github.com/forestrie/go-sumtree/verifyreq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numberedLeafFile writes leaves i = 0..n-1 with sum i and data i.
func numberedLeafFile(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("sum,data\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d,0x%x\n", i, sumtreetesting.NumberedData(uint64(i)))
	}
	return writeTestFile(t, "leaves.csv", b.String())
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &App{out: &out}
	err := newCliApp(app).Run(append([]string{"sumtree"}, args...))
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	leaves := numberedLeafFile(t, 5)

	for _, name := range hashers.Names() {
		t.Run(name, func(t *testing.T) {
			stdout, err := runApp(t, "--hasher", name, "root", "--leaves", leaves)
			require.NoError(t, err)

			var got rootOutput
			require.NoError(t, json.Unmarshal([]byte(stdout), &got))

			newHasher, err := hashers.New(name)
			require.NoError(t, err)
			sums, data := sumtreetesting.NumberedLeaves(5)
			want, err := sumtree.CalcRoot(newHasher(), sums, data)
			require.NoError(t, err)

			assert.Equal(t, hexString(want.Hash[:]), got.RootHash)
			assert.Equal(t, "10", got.RootSum)
			assert.Equal(t, uint64(5), got.LeafCount)
		})
	}
}

func TestBuildThenProofCmd(t *testing.T) {
	leaves := numberedLeafFile(t, 6)
	dir := t.TempDir()
	tree := filepath.Join(dir, "tree.smt")
	reqFile := filepath.Join(dir, "req.cbor")

	_, err := runApp(t, "build", "--leaves", leaves, "--out", tree)
	require.NoError(t, err)

	fromStore, err := runApp(t, "proof", "--leaves", leaves, "--tree", tree, "--index", "4", "--out", reqFile)
	require.NoError(t, err)
	fromLeaves, err := runApp(t, "proof", "--leaves", leaves, "--index", "4")
	require.NoError(t, err)
	assert.Equal(t, fromLeaves, fromStore)

	var got proofOutput
	require.NoError(t, json.Unmarshal([]byte(fromStore), &got))
	assert.Equal(t, "15", got.RootSum)
	assert.Equal(t, "4", got.LeafSum)
	assert.Equal(t, uint64(4), got.LeafIndex)
	assert.Equal(t, uint64(6), got.LeafCount)
	// leaves 4 and 5 pair, then carry to the root: two siblings.
	assert.Equal(t, []string{"5", "6"}, got.NodeSums)

	sums, data := sumtreetesting.NumberedLeaves(6)
	nodes, err := sumtree.ConstructTree(hashers.Keccak256(), sums, data)
	require.NoError(t, err)
	enc, err := verifyreq.BigEndianKey(verifyreq.MaxKeyWidth)
	require.NoError(t, err)
	want, err := verifyreq.NewRequest(nodes, 4, enc)
	require.NoError(t, err)

	codec, err := verifyreq.NewCodec()
	require.NoError(t, err)
	wantBytes, err := codec.MarshalRequest(want)
	require.NoError(t, err)
	gotBytes, err := os.ReadFile(reqFile)
	require.NoError(t, err)
	assert.Equal(t, wantBytes, gotBytes)
}

func TestProofCmdKeyEncoding(t *testing.T) {
	leaves := numberedLeafFile(t, 3)

	stdout, err := runApp(t, "proof", "--leaves", leaves, "--index", "2", "--key-encoding", "left", "--key-width", "4")
	require.NoError(t, err)

	var got proofOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "0x02000000", got.LeafKey)
}

func TestProofCmdErrors(t *testing.T) {
	leaves := numberedLeafFile(t, 3)
	other := filepath.Join(t.TempDir(), "other.smt")
	_, err := runApp(t, "build", "--leaves", numberedLeafFile(t, 4), "--out", other)
	require.NoError(t, err)

	_, err = runApp(t, "proof", "--leaves", leaves, "--index", "3")
	require.ErrorIs(t, err, sumtree.ErrIndexOutOfBounds)

	_, err = runApp(t, "proof", "--leaves", leaves, "--tree", other, "--index", "1")
	require.Error(t, err)

	_, err = runApp(t, "proof", "--leaves", leaves, "--index", "0", "--key-encoding", "rlp")
	require.ErrorIs(t, err, verifyreq.ErrUnknownKeyEncoding)

	_, err = runApp(t, "build", "--leaves", leaves)
	require.Error(t, err)

	_, err = runApp(t, "proof", "--leaves", leaves, "--index", "0", "--out", t.TempDir())
	require.ErrorIs(t, err, sumstore.ErrPathIsDir)
}
