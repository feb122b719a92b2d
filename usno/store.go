// Public domain.

package usno

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Store holds local copies of downloaded files, by file name.
//
// Open of a file not present must return an error satisfying
// errors.Is(err, fs.ErrNotExist).  Remove of a file not present is not
// an error.
type Store interface {
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
	Remove(name string) error
}

// Dir is a Store backed by a file system directory.  The directory is
// created as needed.
type Dir string

func (d Dir) path(name string) string {
	return filepath.Join(string(d), name)
}

func (d Dir) Open(name string) (io.ReadCloser, error) {
	return os.Open(d.path(name))
}

func (d Dir) Create(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(string(d), 0o755); err != nil {
		return nil, err
	}
	return os.Create(d.path(name))
}

func (d Dir) Remove(name string) error {
	err := os.Remove(d.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Mem is an in-memory Store.  Files written with Create become visible
// when the writer is closed.
type Mem map[string][]byte

func (m Mem) Open(name string) (io.ReadCloser, error) {
	b, ok := m[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m Mem) Create(name string) (io.WriteCloser, error) {
	return &memFile{m: m, name: name}, nil
}

func (m Mem) Remove(name string) error {
	delete(m, name)
	return nil
}

type memFile struct {
	bytes.Buffer
	m    Mem
	name string
}

func (f *memFile) Close() error {
	f.m[f.name] = f.Bytes()
	return nil
}
