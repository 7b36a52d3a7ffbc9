package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Output formats understood by the CLI
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config represents the drills configuration
type Config struct {
	Locale      string       `mapstructure:"locale"`
	Seed        uint64       `mapstructure:"seed"`
	RandomBound int          `mapstructure:"random_bound"`
	Output      OutputConfig `mapstructure:"output"`

	// File is the config file that was read, empty when only defaults apply
	File string `mapstructure:"-"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// Language returns the parsed locale. Load has already validated it.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Russian
	}
	return tag
}

// Load reads drills.yml or drills.yaml from the working directory. A non-empty path
// selects an explicit file instead, which must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("locale", "ru")
	v.SetDefault("seed", 0)
	v.SetDefault("random_bound", 100)
	v.SetDefault("output.format", FormatTable)
	v.SetDefault("output.no_color", false)

	// DRILLS_LOCALE, DRILLS_OUTPUT_FORMAT, ...
	v.SetEnvPrefix("drills")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = FindConfigFile(".")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	// Otherwise no config file - use defaults and environment

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	cfg.File = path

	return &cfg, nil
}

// FindConfigFile returns the config file in dir, or "" when there is none
func FindConfigFile(dir string) string {
	for _, name := range []string{"drills.yml", "drills.yaml"} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("locale must be a BCP 47 language tag, got %q", cfg.Locale)
	}
	if cfg.RandomBound < 2 {
		return fmt.Errorf("random_bound must be at least 2, got %d", cfg.RandomBound)
	}
	switch cfg.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be one of table, json, yaml, got %q", cfg.Output.Format)
	}
	return nil
}
