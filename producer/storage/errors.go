package storage

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration    = errors.New("invalid configuration")
	ErrRandomSourceUnavailable = errors.New("random source unavailable")
	ErrFileWriteFailure        = errors.New("file write failure")
	ErrVerificationFailed      = errors.New("verification failed")
)

// ConfigError carries the user facing reason of a rejected configuration.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// FileError reports a failed operation on one output file.
type FileError struct {
	Op   string
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *FileError) Unwrap() []error { return []error{ErrFileWriteFailure, e.Err} }
