package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func produceForTest(t *testing.T, fs afero.Fs, config Config) *Window {
	window := newTestWindow(t, config.WindowSize)
	require.NoError(t, NewProducer(fs, config, window, &bytes.Buffer{}).Run(context.Background()))
	return window
}

func TestVerifyProducedFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	config := Config{OutputFormat: "file_%d.dat", WindowSize: 300, FileSize: 1000, FileCount: 3}
	produceForTest(t, fs, config)

	results, err := Verify(context.Background(), fs, config)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.Equal(t, int64(1000), r.Size)
	}
}

func TestVerifyDetectsProblems(t *testing.T) {
	config := Config{OutputFormat: "file_%d.dat", WindowSize: 10, FileSize: 25, FileCount: 2}

	tests := []struct {
		name   string
		tamper func(fs afero.Fs)
		want   string
	}{
		{"missing file", func(fs afero.Fs) { fs.Remove("file_1.dat") }, "file_1.dat"},
		{"short file", func(fs afero.Fs) { afero.WriteFile(fs, "file_0.dat", make([]byte, 24), 0644) }, "size 24, expected 25"},
		{"changed chunk", func(fs afero.Fs) {
			content, _ := afero.ReadFile(fs, "file_0.dat")
			content[15] ^= 0xff
			afero.WriteFile(fs, "file_0.dat", content, 0644)
		}, "chunk 1 differs"},
		{"changed tail", func(fs afero.Fs) {
			content, _ := afero.ReadFile(fs, "file_1.dat")
			content[24] ^= 0xff
			afero.WriteFile(fs, "file_1.dat", content, 0644)
		}, "tail of 5 bytes differs"},
		{"different window across files", func(fs afero.Fs) {
			afero.WriteFile(fs, "file_1.dat", bytes.Repeat([]byte{1}, 25), 0644)
		}, "first chunk differs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			produceForTest(t, fs, config)
			tt.tamper(fs)

			_, err := Verify(context.Background(), fs, config)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrVerificationFailed))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVerifyRejectsInvalidConfiguration(t *testing.T) {
	config := Config{OutputFormat: "file_%d.dat", WindowSize: 100, FileSize: 50, FileCount: 1}
	_, err := Verify(context.Background(), afero.NewMemMapFs(), config)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
