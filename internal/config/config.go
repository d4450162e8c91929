// Package config loads the optional tool configuration file and resolves
// it against environment variables and built-in defaults.
package config

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName is the file searched for in the working directory when no
// explicit --config path is given.
const ConfigName = "bspgen"

// Config is the tool configuration. Every field has a flag counterpart;
// precedence is flag > BSPGEN_* environment > config file > default.
type Config struct {
	// Package is the package name of the generated code.
	Package string `mapstructure:"package"`
	// Output is the directory the generated code is written to. Empty
	// means stdout.
	Output string `mapstructure:"output"`
	// Overrides is the path of a type override YAML file.
	Overrides string `mapstructure:"overrides"`
	// Jobs bounds concurrent input decoding. Zero means one per CPU.
	Jobs int `mapstructure:"jobs"`
	// SkipKeys replaces the built-in skip list ("classname", "hammerid").
	SkipKeys []string `mapstructure:"skipKeys"`
	// CacheSize is the per-worker classification cache size. Zero keeps
	// the built-in size.
	CacheSize int `mapstructure:"cacheSize"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	// Level is the minimum emitted level: debug, info, warn or error.
	// Empty leaves the level to the verbosity flags.
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Package: "entities",
	}
}

// envKeys are the settings that can be overridden via BSPGEN_* variables.
var envKeys = []string{"package", "output", "overrides", "jobs", "cacheSize", "logging.level"}

// Load reads the tool configuration. path names an explicit file; empty
// path searches for bspgen.yaml in the working directory, and finding
// nothing there is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("package", "entities")
	v.SetDefault("output", "")
	v.SetDefault("overrides", "")
	v.SetDefault("jobs", 0)
	v.SetDefault("skipKeys", []string(nil))
	v.SetDefault("cacheSize", 0)
	v.SetDefault("logging.level", "")

	v.SetEnvPrefix("BSPGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Only the search miss is recoverable; an explicit path that does
		// not exist surfaces as a plain file error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return &ConfigError{Field: "package", Message: "not a valid Go package name"}
	}

	if c.Jobs < 0 {
		return &ConfigError{Field: "jobs", Message: "must not be negative"}
	}

	if c.CacheSize < 0 {
		return &ConfigError{Field: "cacheSize", Message: "must not be negative"}
	}

	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
