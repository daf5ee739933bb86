package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/forestrie/go-sumtree/sumtree"
	"github.com/forestrie/go-sumtree/verifyreq"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

type rootOutput struct {
	RootHash  string `json:"rootHash"`
	RootSum   string `json:"rootSum"`
	LeafCount uint64 `json:"leafCount"`
}

type proofOutput struct {
	RootHash  string   `json:"rootHash"`
	RootSum   string   `json:"rootSum"`
	LeafIndex uint64   `json:"leafIndex"`
	LeafCount uint64   `json:"leafCount"`
	LeafKey   string   `json:"leafKey"`
	LeafSum   string   `json:"leafSum"`
	LeafData  string   `json:"leafData"`
	SideNodes []string `json:"sideNodes"`
	NodeSums  []string `json:"nodeSums"`
}

func (app *App) RootCmd(c *cli.Context) error {
	sums, data, err := readLeafFile(c.String(flagLeaves))
	if err != nil {
		return err
	}

	root, err := sumtree.CalcRoot(app.newHasher(), sums, data)
	if err != nil {
		return errors.Wrap(err, "unable to compute root")
	}
	app.log.Debugf("root: leaves=%d, hasher=%s", len(sums), app.config.Hasher)

	return app.print(rootOutput{
		RootHash:  hexString(root.Hash[:]),
		RootSum:   root.Sum.String(),
		LeafCount: uint64(len(sums)),
	})
}

func (app *App) BuildCmd(c *cli.Context) error {
	out := c.String(flagOut)
	if out == "" {
		return errors.Errorf("--%s is required", flagOut)
	}

	sums, data, err := readLeafFile(c.String(flagLeaves))
	if err != nil {
		return err
	}
	nodes, err := sumtree.ConstructTree(app.newHasher(), sums, data)
	if err != nil {
		return errors.Wrap(err, "unable to build tree")
	}
	if err = app.store.WriteTree(out, nodes); err != nil {
		return errors.Wrap(err, "unable to write tree")
	}
	app.log.Infof("built tree: %s, leaves=%d, nodes=%d", out, nodes.LeafCount(), len(nodes))

	root, _ := nodes.Root()
	return app.print(rootOutput{
		RootHash:  hexString(root.Hash[:]),
		RootSum:   root.Sum.String(),
		LeafCount: nodes.LeafCount(),
	})
}

func (app *App) ProofCmd(c *cli.Context) error {
	if c.IsSet(flagKeyEncoding) {
		app.config.KeyEncoding = c.String(flagKeyEncoding)
	}
	if c.IsSet(flagKeyWidth) {
		app.config.KeyWidth = c.Int(flagKeyWidth)
	}
	enc, err := verifyreq.EncoderByName(app.config.KeyEncoding, app.config.KeyWidth)
	if err != nil {
		return err
	}

	sums, data, err := readLeafFile(c.String(flagLeaves))
	if err != nil {
		return err
	}
	index := c.Uint64(flagIndex)

	req, err := app.request(c.String(flagTree), sums, data, index, enc)
	if err != nil {
		return errors.Wrapf(err, "unable to produce proof for leaf %d", index)
	}

	if out := c.String(flagOut); out != "" {
		codec, err := verifyreq.NewCodec()
		if err != nil {
			return err
		}
		b, err := codec.MarshalRequest(req)
		if err != nil {
			return errors.Wrap(err, "unable to encode request")
		}
		if err = app.store.WriteFile(out, b); err != nil {
			return errors.Wrap(err, "unable to write request")
		}
		app.log.Infof("wrote request: %s, leaf=%d, bytes=%d", out, index, len(b))
	}

	return app.print(newProofOutput(req, index))
}

// request builds the verifier request from the node store at treePath, or
// from the leaves when no store is given.
func (app *App) request(
	treePath string, sums []*big.Int, data [][]byte, index uint64, enc verifyreq.KeyEncoder,
) (verifyreq.Request, error) {
	if treePath == "" {
		nodes, err := sumtree.ConstructTree(app.newHasher(), sums, data)
		if err != nil {
			return verifyreq.Request{}, err
		}
		return verifyreq.NewRequest(nodes, index, enc)
	}

	v, err := app.store.ReadTree(treePath)
	if err != nil {
		return verifyreq.Request{}, err
	}
	if v.LeafCount != uint64(len(data)) {
		return verifyreq.Request{}, fmt.Errorf(
			"tree %s has %d leaves, leaf file has %d", treePath, v.LeafCount, len(data))
	}
	if index >= uint64(len(data)) {
		return verifyreq.Request{}, fmt.Errorf("%w: index=%d, leaves=%d", sumtree.ErrIndexOutOfBounds, index, len(data))
	}
	return verifyreq.NewRequestFromStore(app.newHasher(), v, data[index], index, enc)
}

func newProofOutput(req verifyreq.Request, index uint64) proofOutput {
	o := proofOutput{
		RootHash:  hexString(req.RootHash[:]),
		RootSum:   req.RootSum.String(),
		LeafIndex: index,
		LeafCount: req.LeafCount,
		LeafKey:   hexString(req.LeafKey),
		LeafSum:   req.LeafSum.String(),
		LeafData:  hexString(req.LeafData),
		SideNodes: make([]string, req.Proof.Len()),
		NodeSums:  make([]string, req.Proof.Len()),
	}
	for i := range req.Proof.SideNodes {
		o.SideNodes[i] = hexString(req.Proof.SideNodes[i][:])
		o.NodeSums[i] = req.Proof.NodeSums[i].String()
	}
	return o
}

func (app *App) print(v any) error {
	enc := json.NewEncoder(app.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
