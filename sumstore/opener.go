package sumstore

import (
	"io"
	"os"
)

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

// WriteOpener opens a path for writing, truncating any existing content.
type WriteOpener interface {
	Open(string) (io.WriteCloser, error)
}

// OsOpener reads and writes the local file system.
type OsOpener struct{}

func (OsOpener) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// OsWriteOpener creates or truncates files on the local file system.
type OsWriteOpener struct {
	Perm os.FileMode
}

func (o OsWriteOpener) Open(path string) (io.WriteCloser, error) {
	perm := o.Perm
	if perm == 0 {
		perm = 0644
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
}
