package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/pavanmanishd/rcarena"
)

type config struct {
	Arena  rcarena.Config `yaml:"arena"`
	Count  int            `yaml:"count"`
	Clones int            `yaml:"clones"`
}

func defaultConfig() config {
	return config{
		Arena:  rcarena.Config{SegmentSize: rcarena.DefaultSegmentSize},
		Count:  128,
		Clones: 1,
	}
}

// loadConfig reads a yaml config file on top of the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

func (cfg *config) validate() error {
	if err := cfg.Arena.Validate(); err != nil {
		return err
	}
	if cfg.Count < 0 {
		return errors.Errorf("count must not be negative (got %d)", cfg.Count)
	}
	if cfg.Clones < 0 {
		return errors.Errorf("clones must not be negative (got %d)", cfg.Clones)
	}
	return nil
}
