package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional REPL configuration file.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	NoColor     bool   `yaml:"no_color"`
}

func defaultConfig() Config {
	return Config{Prompt: "CBASIC> "}
}

// loadConfig reads the config file at path, or at the default location
// when path is empty. A missing file is not an error; the defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "cbasic", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultConfig().Prompt
	}
	return cfg, nil
}
