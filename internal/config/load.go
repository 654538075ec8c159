package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FLASHCARDS"

// configFileEnv names an explicit config file to read.
const configFileEnv = EnvPrefix + "_CONFIG_FILE"

// Load builds the configuration from defaults, an optional config file,
// environment variables and the startup arguments, in increasing order of
// precedence. Returns a populated Config or an error if loading or
// validation fails.
func Load(args []string) (*Config, error) {
	v := viper.New()

	// 1. Defaults
	v.SetDefault("log.level", "error")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("session.import_file", "")
	v.SetDefault("session.export_file", "")

	// 2. Optional config file
	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("flashcards")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 3. Environment variables, e.g. FLASHCARDS_LOG_LEVEL
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Startup arguments
	fs, err := parseArgs(args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}
	if err := v.BindPFlag("session.import_file", fs.Lookup(ArgImport)); err != nil {
		return nil, fmt.Errorf("failed to bind -%s: %w", ArgImport, err)
	}
	if err := v.BindPFlag("session.export_file", fs.Lookup(ArgExport)); err != nil {
		return nil, fmt.Errorf("failed to bind -%s: %w", ArgExport, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
