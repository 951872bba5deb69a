package util

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Configuration interface {
	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
}

// LoadConfiguration binds the parsed flags into a fresh viper instance and,
// when configFile is not empty, merges that file underneath them.
// Explicitly set flags always win over the file, the file wins over defaults.
func LoadConfiguration(flags *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if configFile == "" {
		return v, nil
	}

	v.SetConfigFile(configFile)
	if ext := strings.TrimPrefix(filepath.Ext(configFile), "."); ext == "" {
		v.SetConfigType("toml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", configFile, err)
	}
	glog.V(1).Infof("Reading configuration from %s", v.ConfigFileUsed())
	return v, nil
}
