package session

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Shell       ShellConfig      `toml:"shell"`
	Output      OutputConfig     `toml:"output"`
	Checkpoints CheckpointConfig `toml:"checkpoints"`
}

type ShellConfig struct {
	Prompt      string `toml:"prompt,omitempty"`
	HistoryFile string `toml:"history_file,omitempty"`
	Banner      bool   `toml:"banner"`
}

type OutputConfig struct {
	Color bool `toml:"color"`
}

type CheckpointConfig struct {
	// CacheSize bounds the read cache in front of the checkpoint store.
	// Zero disables the cache.
	CacheSize int `toml:"cache_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt: "> ",
			Banner: true,
		},
		Output: OutputConfig{
			Color: true,
		},
		Checkpoints: CheckpointConfig{
			CacheSize: 64,
		},
	}
}

func parseConfig(r io.Reader) (*Config, error) {
	out := DefaultConfig()
	_, err := toml.NewDecoder(r).Decode(out)
	return out, err
}

// LoadConfigFromFile reads a TOML config on top of DefaultConfig. A
// relative history_file is taken relative to the config file.
func LoadConfigFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		return nil, err
	}
	if c.Shell.HistoryFile != "" && !filepath.IsAbs(c.Shell.HistoryFile) {
		c.Shell.HistoryFile = filepath.Clean(filepath.Join(filepath.Dir(path), c.Shell.HistoryFile))
	}
	return c, nil
}
