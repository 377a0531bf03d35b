// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by this module.
const EnvPrefix = "DM_ASSISTANT_"

// ParseEnv loads configuration from DM_ASSISTANT_* environment variables.
// Struct tags name the variable without the prefix.
func ParseEnv(target any) error {
	return ParseEnvWithLookup(target, nil)
}

// ParseEnvWithLookup loads configuration from the supplied environment map,
// or from the process environment when environ is nil.
func ParseEnvWithLookup(target any, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
