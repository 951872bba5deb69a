package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("output", "o", "file_%d.dat", "")
	fs.IntP("count", "c", 1, "")
	fs.StringP("size", "s", "1073741824", "")
	return fs
}

func TestLoadConfigurationDefaults(t *testing.T) {
	fs := newTestFlags()
	require.NoError(t, fs.Parse([]string{"-c", "3"}))

	v, err := LoadConfiguration(fs, "")
	require.NoError(t, err)
	assert.Equal(t, 3, v.GetInt("count"))
	assert.Equal(t, "file_%d.dat", v.GetString("output"))
}

func TestLoadConfigurationFileBelowFlags(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "producer.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
output = "data_%d.bin"
count = 4
size = "4KiB"
`), 0644))

	fs := newTestFlags()
	require.NoError(t, fs.Parse([]string{"--count", "2"}))

	v, err := LoadConfiguration(fs, configFile)
	require.NoError(t, err)
	assert.Equal(t, 2, v.GetInt("count"), "explicit flag wins")
	assert.Equal(t, "data_%d.bin", v.GetString("output"))
	assert.Equal(t, "4KiB", v.GetString("size"))
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(newTestFlags(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
