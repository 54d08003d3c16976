// Package loxconfig loads an optional project-level `.loxrc.yaml` that
// supplies CLI flag defaults, following the same loader shape
// MongooseMoo-barn's conformance package uses to load YAML test
// fixtures: read the file if present, unmarshal with gopkg.in/yaml.v3,
// and tolerate a missing file entirely (defaults apply instead).
package loxconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI flag defaults that can be overridden per-project.
// Command-line flags always take precedence over these values.
type Config struct {
	// Resolver selects whether the resolver pass runs by default
	// (true) or variable lookup falls back to dynamic name search
	// (false). Mirrors the CLI's --resolver flag.
	Resolver bool `yaml:"resolver"`
	// Color selects stderr error-message coloring: "auto" (detect a
	// terminal), "always", or "never".
	Color string `yaml:"color"`
}

// Default returns the configuration used when no `.loxrc.yaml` is
// found.
func Default() Config {
	return Config{Resolver: true, Color: "auto"}
}

// Load reads path and merges it over Default(). A missing file is not
// an error: Default() is returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
