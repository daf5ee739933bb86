package main

import (
	"github.com/forestrie/go-sumtree/hashers"
	"github.com/forestrie/go-sumtree/verifyreq"
	"github.com/urfave/cli/v2"
)

const (
	flagConfig      = "config"
	flagHasher      = "hasher"
	flagLogLevel    = "log-level"
	flagLeaves      = "leaves"
	flagOut         = "out"
	flagTree        = "tree"
	flagIndex       = "index"
	flagKeyEncoding = "key-encoding"
	flagKeyWidth    = "key-width"
)

func getFlags() map[string]cli.Flag {
	return map[string]cli.Flag{
		flagConfig: &cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			EnvVars: []string{"SUMTREE_CONFIG"},
			Usage:   "path to YAML configuration",
		},
		flagHasher: &cli.StringFlag{
			Name:    flagHasher,
			EnvVars: []string{"SUMTREE_HASHER"},
			Usage:   "digest function (" + hashers.NameKeccak256 + " or " + hashers.NameSHA256 + "), will override value from config file",
		},
		flagLogLevel: &cli.StringFlag{
			Name:    flagLogLevel,
			EnvVars: []string{"SUMTREE_LOG_LEVEL"},
			Usage:   "log level, will override value from config file",
		},
		flagLeaves: &cli.StringFlag{
			Name:     flagLeaves,
			Aliases:  []string{"l"},
			EnvVars:  []string{"SUMTREE_LEAVES"},
			Usage:    "path to CSV leaf file with sum and data columns",
			Required: true,
		},
		flagOut: &cli.StringFlag{
			Name:    flagOut,
			Aliases: []string{"o"},
			Usage:   "output file",
		},
		flagTree: &cli.StringFlag{
			Name:    flagTree,
			Aliases: []string{"t"},
			Usage:   "node store written by build, used instead of rebuilding the tree",
		},
		flagIndex: &cli.Uint64Flag{
			Name:     flagIndex,
			Aliases:  []string{"i"},
			Usage:    "leaf index to prove",
			Required: true,
		},
		flagKeyEncoding: &cli.StringFlag{
			Name:    flagKeyEncoding,
			EnvVars: []string{"SUMTREE_KEY_ENCODING"},
			Usage:   "leaf key layout (" + verifyreq.KeyEncodingBigEndian + " or " + verifyreq.KeyEncodingLeftAligned + "), will override value from config file",
		},
		flagKeyWidth: &cli.IntFlag{
			Name:    flagKeyWidth,
			EnvVars: []string{"SUMTREE_KEY_WIDTH"},
			Usage:   "leaf key width in bytes, will override value from config file",
		},
	}
}

func pickFlags(names ...string) []cli.Flag {
	all := getFlags()
	flags := make([]cli.Flag, 0, len(names))
	for _, name := range names {
		flags = append(flags, all[name])
	}
	return flags
}
