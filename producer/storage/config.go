package storage

import (
	"fmt"
	"strings"
)

const (
	DefaultOutputFormat = "file_%d.dat"
	DefaultWindowSize   = 1024
	DefaultFileSize     = 1024 * 1024 * 1024
	DefaultFileCount    = 1
	DefaultRandomSource = "/dev/urandom"
)

// Config is resolved once from the command line and never changed afterwards.
type Config struct {
	OutputFormat string
	WindowSize   int64
	FileSize     int64
	FileCount    int

	Fsync        bool
	DropCache    bool
	RandomSource string
}

func DefaultConfig() Config {
	return Config{
		OutputFormat: DefaultOutputFormat,
		WindowSize:   DefaultWindowSize,
		FileSize:     DefaultFileSize,
		FileCount:    DefaultFileCount,
		RandomSource: DefaultRandomSource,
	}
}

// Validate must pass before the window is allocated or any file is touched.
func (c Config) Validate() error {
	if c.FileSize < c.WindowSize {
		return &ConfigError{Reason: "File size must be greater than or equal to window size"}
	}
	if c.WindowSize <= 0 {
		return &ConfigError{Reason: "Window size must be greater than zero"}
	}
	if c.OutputFormat == "" {
		return &ConfigError{Reason: "Output file name must not be empty"}
	}
	if strings.Contains(c.FileName(0), "%!") {
		return &ConfigError{Reason: fmt.Sprintf("Output file name %q must use a single integer placeholder such as %%d", c.OutputFormat)}
	}
	return nil
}

// FileName substitutes the zero based index into the output pattern.
// A pattern without any placeholder names the same file for every index.
func (c Config) FileName(index int) string {
	if !strings.Contains(c.OutputFormat, "%") {
		return c.OutputFormat
	}
	return fmt.Sprintf(c.OutputFormat, index)
}

// Chunks splits the file size into full window writes and the trailing partial write.
func (c Config) Chunks() (full, remainder int64) {
	return c.FileSize / c.WindowSize, c.FileSize % c.WindowSize
}
