package main

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
)

const defaultConfigFile = "loaderutil.toml"

// Config holds the defaults of all sub-commands.
type Config struct {
	Digest  DigestConfig  `toml:"digest"`
	Name    NameConfig    `toml:"name"`
	Request RequestConfig `toml:"request"`
	// CacheLimit bounds the process-wide digest cache; 0 means unbounded.
	CacheLimit int `toml:"cache_limit"`
}

// DigestConfig holds hashing defaults.
type DigestConfig struct {
	Algorithm string `toml:"algorithm"`
	Encoding  string `toml:"encoding"`
	Length    int    `toml:"length"`
	Salt      string `toml:"salt"`
}

// NameConfig holds name interpolation defaults.
type NameConfig struct {
	Template  string `toml:"template"`
	Context   string `toml:"context"`
	RegExp    string `toml:"regexp"`
	DottedExt bool   `toml:"dotted_ext"`
}

// RequestConfig holds request conversion defaults.
type RequestConfig struct {
	Root    string `toml:"root"`
	Context string `toml:"context"`
}

func defaultConfig() Config {
	return Config{
		Digest: DigestConfig{
			Algorithm: "xxhash64",
			Encoding:  "hex",
		},
		Name: NameConfig{
			Template: "[name].[contenthash:8].[ext]",
		},
	}
}

// loadConfig reads path over the defaults. A missing default config file is
// not an error; a missing file which has been named explicitly is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		tracer().Infof("%s: ignoring unknown keys %v", path, undecoded)
	}
	return cfg, nil
}
