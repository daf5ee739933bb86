package sumstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sumtree/sumtree"
)

var (
	ErrPathIsDir       = errors.New("sumstore: expected a file path, found a directory")
	ErrWriteIncomplete = errors.New("sumstore: a file write succeeded, but the number of bytes written was shorter than the supplied data")
	ErrLogNotProvided  = errors.New("sumstore: a logger is required")
)

type StoreOption func(*Store)

func WithOpener(opener Opener) StoreOption {
	return func(s *Store) { s.opener = opener }
}

func WithWriteOpener(writeOpener WriteOpener) StoreOption {
	return func(s *Store) { s.writeOpener = writeOpener }
}

// Store persists node stores, one tree per file.
type Store struct {
	log         logger.Logger
	opener      Opener
	writeOpener WriteOpener
}

// NewStore returns a Store on the local file system unless openers are
// supplied as options.
func NewStore(log logger.Logger, opts ...StoreOption) (*Store, error) {
	if log == nil {
		return nil, ErrLogNotProvided
	}
	s := &Store{
		log:         log,
		opener:      OsOpener{},
		writeOpener: OsWriteOpener{},
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// WriteTree encodes nodes as a node store and writes it to path.
func (s *Store) WriteTree(path string, nodes sumtree.Nodes) error {
	data := make([]byte, sumtree.NodeStoreBytes(nodes.LeafCount()))
	if err := sumtree.EncodeNodeStore(data, nodes); err != nil {
		return err
	}
	if err := s.WriteFile(path, data); err != nil {
		return err
	}
	s.log.Debugf("wrote tree: %s, leaves=%d", path, nodes.LeafCount())
	return nil
}

// WriteFile writes data to path through the store's write opener.
func (s *Store) WriteFile(path string, data []byte) error {
	if err := checkNotDir(path); err != nil {
		return err
	}
	if err := writeAll(s.writeOpener, path, data); err != nil {
		return err
	}
	s.log.Debugf("wrote file: %s, bytes=%d", path, len(data))
	return nil
}

// ReadTree reads and decodes the node store at path.
func (s *Store) ReadTree(path string) (sumtree.StoreView, error) {
	if err := checkNotDir(path); err != nil {
		return sumtree.StoreView{}, err
	}

	f, err := s.opener.Open(path)
	if err != nil {
		return sumtree.StoreView{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return sumtree.StoreView{}, err
	}
	v, err := sumtree.NewStoreView(data)
	if err != nil {
		return sumtree.StoreView{}, fmt.Errorf("%w: %s", err, path)
	}
	s.log.Debugf("read tree: %s, leaves=%d", path, v.LeafCount)
	return v, nil
}

func writeAll(wo WriteOpener, filename string, data []byte) error {
	f, err := wo.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := f.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %s", ErrWriteIncomplete, filename)
	}
	return nil
}

// checkNotDir fails if path names an existing directory. A path that does
// not exist yet is fine.
func checkNotDir(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	fi, err := os.Stat(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrPathIsDir, path)
	}
	return nil
}
