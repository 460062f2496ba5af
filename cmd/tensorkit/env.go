package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Var returns an environment variable with surrounding quotes and spaces removed.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Uint64 returns a getter for a uint64 environment variable with a default.
func Uint64(key string, defaultValue uint64) func() uint64 {
	return func() uint64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// Seed is the default weight initialization seed.
// Configurable via TENSORKIT_SEED.
var Seed = Uint64("TENSORKIT_SEED", 42)
