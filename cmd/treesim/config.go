package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go.lepak.sg/treesim/tree/build"
	"go.lepak.sg/treesim/tree/traverse"
)

// Config holds the defaults for every subcommand. Flags set on the
// command line win over the file.
type Config struct {
	Pattern   string  `yaml:"pattern"`
	Size      int     `yaml:"size"`
	Algorithm string  `yaml:"algorithm"`
	Speed     float64 `yaml:"speed"`
	// Seed 0 means a new seed every run.
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
	Rounds  int   `yaml:"rounds"`
}

var defaultConfig = Config{
	Pattern:   build.Random.String(),
	Size:      10,
	Algorithm: traverse.BFS.String(),
	Speed:     1,
	Workers:   4,
	Rounds:    3,
}

const (
	minSize = 5
	maxSize = 50
)

// LoadConfig reads path over the defaults. An empty path or a missing
// file gives the defaults; anything unreadable or invalid is an error.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	if path == "" {
		return &config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := config.validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if _, err := build.ParsePattern(c.Pattern); err != nil {
		return err
	}
	if _, err := traverse.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.Size < minSize || c.Size > maxSize {
		return errors.Newf("size %d is outside [%d, %d]", c.Size, minSize, maxSize)
	}
	if c.Workers < 1 {
		return errors.Newf("workers must be positive, got %d", c.Workers)
	}
	if c.Rounds < 1 {
		return errors.Newf("rounds must be positive, got %d", c.Rounds)
	}
	return nil
}

// merged returns a copy of c with every flag the user set on cmd
// applied over it.
func (c Config) merged(cmd *cobra.Command) (Config, error) {
	fs := cmd.Flags()
	var err error

	if fs.Changed("pattern") {
		if c.Pattern, err = fs.GetString("pattern"); err != nil {
			return c, err
		}
	}
	if fs.Changed("size") {
		if c.Size, err = fs.GetInt("size"); err != nil {
			return c, err
		}
	}
	if fs.Changed("algorithm") {
		if c.Algorithm, err = fs.GetString("algorithm"); err != nil {
			return c, err
		}
	}
	if fs.Changed("speed") {
		if c.Speed, err = fs.GetFloat64("speed"); err != nil {
			return c, err
		}
	}
	if fs.Changed("seed") {
		if c.Seed, err = fs.GetInt64("seed"); err != nil {
			return c, err
		}
	}
	if fs.Changed("workers") {
		if c.Workers, err = fs.GetInt("workers"); err != nil {
			return c, err
		}
	}
	if fs.Changed("rounds") {
		if c.Rounds, err = fs.GetInt("rounds"); err != nil {
			return c, err
		}
	}

	return c, c.validate()
}
