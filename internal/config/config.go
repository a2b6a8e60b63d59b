// Package config handles pure3d tool configuration loading and management.
package config

import "runtime"

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Parser  ParserConfig  `yaml:"parser"`
	Index   IndexConfig   `yaml:"index"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ParserConfig holds chunk parser settings.
type ParserConfig struct {
	HexdumpLimit          int  `yaml:"hexdump_limit"`           // Bytes per diagnostic dump, 0 disables
	ToleratePayloadErrors bool `yaml:"tolerate_payload_errors"` // Keep failing payloads as unknown records
	LogUnknown            bool `yaml:"log_unknown"`
}

// IndexConfig holds batch indexing settings.
type IndexConfig struct {
	Workers    int      `yaml:"workers"`
	Database   string   `yaml:"database"`
	Extensions []string `yaml:"extensions"` // Matched case-insensitively against file names
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Parser: ParserConfig{
			HexdumpLimit:          256,
			ToleratePayloadErrors: false,
			LogUnknown:            true,
		},
		Index: IndexConfig{
			Workers:    runtime.NumCPU(),
			Database:   "pure3d-index.db",
			Extensions: []string{".p3d", ".p3d.xz"},
		},
	}
}
