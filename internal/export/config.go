package export

import (
	"fmt"
	"os"
)

const (
	EnvOutDir = "GLYPHICON_OUT_DIR"
	EnvStem   = "GLYPHICON_STEM"
	EnvSizes  = "GLYPHICON_SIZES"
)

// DefaultOptionsFromEnv starts from DefaultOptions and applies any of the
// GLYPHICON_* environment variables that are set.
func DefaultOptionsFromEnv() (Options, error) {
	opts := DefaultOptions()
	if dir := os.Getenv(EnvOutDir); dir != "" {
		opts.Dir = dir
	}
	if stem := os.Getenv(EnvStem); stem != "" {
		opts.Stem = stem
	}
	if raw := os.Getenv(EnvSizes); raw != "" {
		sizes, err := ParseSizes(raw)
		if err != nil {
			return Options{}, fmt.Errorf("%s: %w", EnvSizes, err)
		}
		opts.Sizes = sizes
	}
	return opts, nil
}
