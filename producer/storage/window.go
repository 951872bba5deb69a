package storage

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

// Window is the single buffer written over and over again.
// It is filled once from the random source and is read only afterwards.
type Window struct {
	data []byte
}

// OpenRandomSource opens the entropy device at path, or crypto/rand when path is empty.
func OpenRandomSource(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(rand.Reader), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return f, nil
}

// ReadWindow allocates size bytes and fills them with one read from the random source at path.
func ReadWindow(size int64, path string) (*Window, error) {
	source, err := OpenRandomSource(path)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	return NewWindow(size, source)
}

// NewWindow issues exactly one read request against r.
// A short read leaves the tail zeroed; there is no retry.
func NewWindow(size int64, r io.Reader) (*Window, error) {
	if size <= 0 {
		return nil, &ConfigError{Reason: "Window size must be greater than zero"}
	}
	w := &Window{data: make([]byte, size)}
	n, err := r.Read(w.data)
	if n == 0 && err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	if n < len(w.data) {
		glog.V(1).Infof("random source returned %d of %d bytes, the rest of the window stays zero", n, len(w.data))
	}
	return w, nil
}

// Bytes returns the window content. Callers must not modify it.
func (w *Window) Bytes() []byte {
	return w.data
}

func (w *Window) Len() int64 {
	return int64(len(w.data))
}
