package main

import (
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sumtree/hashers"
	"github.com/forestrie/go-sumtree/sumstore"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &App{out: os.Stdout}
	if err := newCliApp(app).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

type App struct {
	config    Config
	log       logger.Logger
	out       io.Writer
	newHasher hashers.Factory
	store     *sumstore.Store
}

func newCliApp(app *App) *cli.App {
	return &cli.App{
		Name:   "sumtree",
		Usage:  "build merkle sum trees, print roots and produce inclusion proofs",
		Flags:  pickFlags(flagConfig, flagHasher, flagLogLevel),
		Before: app.InitCfg,
		After: func(*cli.Context) error {
			logger.OnExit()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "root",
				Usage:  "print the root digest and sum of a leaf file",
				Flags:  pickFlags(flagLeaves),
				Action: app.RootCmd,
			},
			{
				Name:   "build",
				Usage:  "build the tree for a leaf file and write its node store",
				Flags:  pickFlags(flagLeaves, flagOut),
				Action: app.BuildCmd,
			},
			{
				Name:   "proof",
				Usage:  "print the inclusion proof for one leaf and optionally write the CBOR verifier request",
				Flags:  pickFlags(flagLeaves, flagTree, flagIndex, flagKeyEncoding, flagKeyWidth, flagOut),
				Action: app.ProofCmd,
			},
		},
	}
}

func (app *App) InitCfg(c *cli.Context) error {
	var err error
	app.config, err = parseConfig(c.String(flagConfig))
	if err != nil {
		return cli.Exit(err, 1)
	}

	if c.IsSet(flagHasher) {
		app.config.Hasher = c.String(flagHasher)
	}
	if c.IsSet(flagLogLevel) {
		app.config.LogLevel = c.String(flagLogLevel)
	}
	if err = app.config.Validate(); err != nil {
		return cli.Exit(err, 1)
	}

	logger.New(app.config.LogLevel)
	app.log = logger.Sugar.WithServiceName("sumtree")

	app.newHasher, err = hashers.New(app.config.Hasher)
	if err != nil {
		return cli.Exit(err, 1)
	}
	app.store, err = sumstore.NewStore(app.log)
	if err != nil {
		return cli.Exit(errors.Wrap(err, "unable to init tree store"), 1)
	}
	if app.out == nil {
		app.out = os.Stdout
	}
	return nil
}
