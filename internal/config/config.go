// Package config loads the optional comb configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// EnvVar names the environment variable holding a config file path.
	EnvVar = "COMB_CONFIG"
	// DefaultFile is looked up in the working directory when no path is given.
	DefaultFile = ".comb.toml"
)

// Config holds the settings the command line falls back to when a flag
// is not given.
type Config struct {
	Verbosity int    `toml:"verbosity"`
	LogFile   string `toml:"log_file"`
	Format    string `toml:"format"`
	Strict    bool   `toml:"strict"`

	// Grammars maps a file extension, without the dot, to a grammar name.
	Grammars map[string]string `toml:"grammars"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Format: "tree",
		Grammars: map[string]string{
			"json": "json",
			"xml":  "xml",
		},
	}
}

// Load reads the configuration from path. An empty path is resolved from
// $COMB_CONFIG and then DefaultFile; when neither names a file the defaults
// are returned. Keys the file sets override the defaults, and unknown keys
// are an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = discover()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if cfg.Verbosity < 0 {
		return nil, fmt.Errorf("load config %s: verbosity must not be negative", path)
	}
	cfg.Path = path
	return cfg, nil
}

func discover() string {
	if path := os.Getenv(EnvVar); path != "" {
		return path
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// GrammarFor returns the grammar configured for the extension of filename.
func (c *Config) GrammarFor(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return "", false
	}
	name, ok := c.Grammars[ext]
	return name, ok
}

// LogPath returns the log file as commonlog.Configure expects it, nil for
// standard error.
func (c *Config) LogPath() *string {
	if c.LogFile == "" {
		return nil
	}
	path := c.LogFile
	return &path
}
