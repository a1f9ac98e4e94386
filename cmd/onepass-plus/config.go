package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig holds the subset of flags a --config file may default. Flags
// explicitly passed on the command line always win over the file.
type fileConfig struct {
	KPaths              *int     `yaml:"k_paths"`
	SimilarityThreshold *float64 `yaml:"similarity_threshold"`
	Format              *string  `yaml:"format"`
}

// applyConfigDefaults loads path as YAML and, for every field it sets,
// overwrites the corresponding flag's value unless the user already passed
// that flag explicitly on the command line.
func applyConfigDefaults(path string, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.KPaths != nil && !flags.Changed("k-paths") {
		kPaths = *cfg.KPaths
	}
	if cfg.SimilarityThreshold != nil && !flags.Changed("similarity-threshold") {
		threshold = *cfg.SimilarityThreshold
	}
	if cfg.Format != nil && !flags.Changed("format") {
		format = *cfg.Format
	}
	return nil
}
