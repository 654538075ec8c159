package config

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Session SessionConfig `mapstructure:"session"`
}

// LogConfig contains the structured logging settings.
// Logging is separate from the console; prompts and answers never go
// through the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
	// File receives log records when set; otherwise they go to stderr.
	File string `mapstructure:"file"`
}

// SessionConfig contains the deck files configured at startup.
type SessionConfig struct {
	// ImportFile is loaded before the first prompt when set.
	ImportFile string `mapstructure:"import_file"`
	// ExportFile receives the deck on exit when set.
	ExportFile string `mapstructure:"export_file"`
}

// HasImportFile reports whether a deck file should be loaded at startup.
func (c SessionConfig) HasImportFile() bool {
	return c.ImportFile != ""
}

// HasExportFile reports whether the deck should be saved on exit.
func (c SessionConfig) HasExportFile() bool {
	return c.ExportFile != ""
}
