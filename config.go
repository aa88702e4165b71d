package rscript

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config is the file-based form of the six build-time Options (spec.md
// §6), for hosts that want to ship an `rscript.yaml` alongside their
// binary instead of wiring options in Go source.
type Config struct {
	Arrays              bool `yaml:"arrays_enabled"`
	Objects             bool `yaml:"objects_enabled"`
	UserFunctions       bool `yaml:"user_functions_enabled"`
	IntegerWidth        int  `yaml:"integer_width"`
	UncheckedArithmetic bool `yaml:"unchecked_arithmetic"`
	SyncMode            bool `yaml:"sync_mode"`
}

// LoadConfig reads and parses a YAML document at path into a Config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("rscript: reading config %s: %w", path, err)
	}
	cfg := Config{Arrays: true, Objects: true, UserFunctions: true, IntegerWidth: 64}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("rscript: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts cfg into the Option list New expects.
func (cfg Config) Options() []Option {
	return []Option{
		WithArrays(cfg.Arrays),
		WithObjects(cfg.Objects),
		WithUserFunctions(cfg.UserFunctions),
		WithIntegerWidth(cfg.IntegerWidth),
		WithUncheckedArithmetic(cfg.UncheckedArithmetic),
		WithSyncMode(cfg.SyncMode),
	}
}
