package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// LeafRow is one line of the leaf CSV file. Sum is a decimal integer and Data
// is hex, with or without a 0x prefix.
type LeafRow struct {
	Sum  string `csv:"sum"`
	Data string `csv:"data"`
}

func readLeafFile(path string) ([]*big.Int, [][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to open leaf file")
	}
	defer file.Close()

	sums, data, err := readLeaves(file)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "leaf file %s", path)
	}
	return sums, data, nil
}

func readLeaves(r io.Reader) ([]*big.Int, [][]byte, error) {
	rows := make([]LeafRow, 0)
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, nil, errors.Wrap(err, "unable to decode leaves")
	}
	return parseLeafRows(rows)
}

func parseLeafRows(rows []LeafRow) ([]*big.Int, [][]byte, error) {
	sums := make([]*big.Int, len(rows))
	data := make([][]byte, len(rows))
	for i, row := range rows {
		s, ok := new(big.Int).SetString(strings.TrimSpace(row.Sum), 10)
		if !ok {
			return nil, nil, fmt.Errorf("leaf %d: invalid sum %q", i, row.Sum)
		}
		sums[i] = s

		d, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(row.Data), "0x"))
		if err != nil {
			return nil, nil, errors.Wrapf(err, "leaf %d: invalid data", i)
		}
		data[i] = d
	}
	return sums, data, nil
}
