package command

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iofpbench/producer/producer/storage"
	"github.com/iofpbench/producer/producer/util"
)

// defineConfigFlags registers the flags that make up a storage.Config.
// produce and verify share them so both commands agree on file names and shape.
func defineConfigFlags(f *pflag.FlagSet) {
	f.StringP("output", "o", storage.DefaultOutputFormat, "output file name, use %d to place the file index when producing more than one file")
	f.StringP("window", "w", "1024", "window size in bytes written by each write call, e.g. 1024 or 64KiB")
	f.IntP("count", "c", storage.DefaultFileCount, "number of output files")
	f.StringP("size", "s", "1073741824", "size in bytes of each file, e.g. 1073741824 or 1GiB")
	f.String("config", "", "toml file with default values, explicit flags take precedence")
}

// resolveConfig merges flags and the optional --config file into a storage.Config.
// The result is not validated yet.
func resolveConfig(f *pflag.FlagSet) (storage.Config, *viper.Viper, error) {
	configFile, _ := f.GetString("config")
	v, err := util.LoadConfiguration(f, configFile)
	if err != nil {
		return storage.Config{}, nil, &ArgumentError{Err: err}
	}
	config, err := configFrom(v)
	return config, v, err
}

func configFrom(conf util.Configuration) (storage.Config, error) {
	config := storage.DefaultConfig()
	config.OutputFormat = conf.GetString("output")
	config.FileCount = conf.GetInt("count")

	window, err := util.ParseBytes(conf.GetString("window"))
	if err != nil {
		return config, &ArgumentError{Err: err}
	}
	config.WindowSize = window

	size, err := util.ParseBytes(conf.GetString("size"))
	if err != nil {
		return config, &ArgumentError{Err: err}
	}
	config.FileSize = size

	config.Fsync = conf.GetBool("fsync")
	config.DropCache = conf.GetBool("dropCache")
	config.RandomSource = conf.GetString("random")
	return config, nil
}
