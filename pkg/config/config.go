// Package config holds the optional YAML configuration file that supplies
// defaults for command-line flags.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"mdtoc/pkg/utils"
)

// Config mirrors the documented keys of an mdtoc config file. Every field is
// optional; zero values mean "use the built-in default". Command-line flags
// take precedence over values loaded from a file.
type Config struct {
	Format       string `yaml:"format,omitempty"`        // alternating, asterisks, dashes, numbers, or pluses
	CustomBullet string `yaml:"custom_bullet,omitempty"` // literal bullet text, overrides Format
	BeginMarker  string `yaml:"begin_marker,omitempty"`
	EndMarker    string `yaml:"end_marker,omitempty"`
	IncludeTitle bool   `yaml:"include_title,omitempty"`
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapErrorf(err, "read config %q", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, utils.WrapErrorf(err, "parse config %q", path)
	}

	return &cfg, nil
}
