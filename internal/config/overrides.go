package config

// Overrides carries command-line settings that take priority over the
// config file. Zero values leave the loaded setting untouched.
type Overrides struct {
	Path     string // Explicit config file
	Debug    bool
	LogFile  string
	Workers  int
	Database string
	Tolerant bool
}

func (o Overrides) apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.Workers > 0 {
		cfg.Index.Workers = o.Workers
	}
	if o.Database != "" {
		cfg.Index.Database = o.Database
	}
	if o.Tolerant {
		cfg.Parser.ToleratePayloadErrors = true
	}
}
