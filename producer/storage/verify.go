package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

type VerifyResult struct {
	Name string
	Size int64
	Err  error
}

// Verify checks that every file of config has the producer's content shape:
// exactly FileSize bytes, every full chunk equal to the first one, the tail
// equal to the first chunk's prefix, and the first chunk identical across files.
// The returned error joins all per file failures.
func Verify(ctx context.Context, fs afero.Fs, config Config) ([]VerifyResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		reference []byte
		results   []VerifyResult
		errs      []error
	)
	for i := 0; i < config.FileCount; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		name := config.FileName(i)
		size, err := verifyFile(fs, name, config, &reference)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrVerificationFailed, name, err)
			errs = append(errs, err)
		}
		results = append(results, VerifyResult{Name: name, Size: size, Err: err})
	}
	return results, errors.Join(errs...)
}

func verifyFile(fs afero.Fs, name string, config Config, reference *[]byte) (int64, error) {
	info, err := fs.Stat(name)
	if err != nil {
		return 0, err
	}
	if info.Size() != config.FileSize {
		return info.Size(), fmt.Errorf("size %d, expected %d", info.Size(), config.FileSize)
	}

	f, err := fs.Open(name)
	if err != nil {
		return info.Size(), err
	}
	defer f.Close()

	full, remainder := config.Chunks()
	chunk := make([]byte, config.WindowSize)
	first := make([]byte, config.WindowSize)
	if _, err = io.ReadFull(f, first); err != nil {
		return info.Size(), fmt.Errorf("read chunk 0: %v", err)
	}
	if *reference == nil {
		*reference = first
	} else if !bytes.Equal(*reference, first) {
		return info.Size(), fmt.Errorf("first chunk differs from the other files")
	}

	for c := int64(1); c < full; c++ {
		if _, err = io.ReadFull(f, chunk); err != nil {
			return info.Size(), fmt.Errorf("read chunk %d: %v", c, err)
		}
		if !bytes.Equal(chunk, first) {
			return info.Size(), fmt.Errorf("chunk %d differs from chunk 0", c)
		}
	}
	if remainder > 0 {
		tail := chunk[:remainder]
		if _, err = io.ReadFull(f, tail); err != nil {
			return info.Size(), fmt.Errorf("read tail: %v", err)
		}
		if !bytes.Equal(tail, first[:remainder]) {
			return info.Size(), fmt.Errorf("tail of %d bytes differs from the window prefix", remainder)
		}
	}
	return info.Size(), nil
}
