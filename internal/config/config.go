// Package config loads the settings of the httpdate command.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/zostay/go-httpdate/header"
)

// Config holds the settings of the httpdate command.
type Config struct {
	// Fields names the header fields that hold dates to be normalized.
	Fields []string

	// Lenient falls back on header.ParseTime for dates that are not valid HTTP
	// dates instead of skipping them.
	Lenient bool

	// LogLevel is a zerolog level name.
	LogLevel string
}

type fileConfig struct {
	Fields   []string `toml:"fields"`
	Lenient  bool     `toml:"lenient"`
	LogLevel string   `toml:"log_level"`
}

// Default returns the settings used when no configuration file is given.
func Default() Config {
	fs := make([]string, len(header.DateFields))
	copy(fs, header.DateFields)
	return Config{
		Fields:   fs,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Load reads a TOML configuration file. Settings missing from the file keep
// their default values. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("fields") {
		cfg.Fields = normalizeFields(raw.Fields)
	}

	if meta.IsDefined("lenient") {
		cfg.Lenient = raw.Lenient
	}

	if meta.IsDefined("log_level") {
		lvl := strings.TrimSpace(raw.LogLevel)
		if _, err := zerolog.ParseLevel(lvl); err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// normalizeFields trims the names and drops blanks and duplicates. Names are
// compared without regard to case, as header field names are.
func normalizeFields(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, name := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
