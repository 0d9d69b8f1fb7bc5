package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Filter FilterConfig `yaml:"filter" mapstructure:"filter"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// FilterConfig sets the default access point filters. Command-line flags
// override these when given explicitly.
type FilterConfig struct {
	RemoveEncrypted bool `yaml:"remove_encrypted" mapstructure:"remove_encrypted"`
	RemoveAnnoying  bool `yaml:"remove_annoying" mapstructure:"remove_annoying"`
	RemoveHidden    bool `yaml:"remove_hidden" mapstructure:"remove_hidden"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("kismet2kml")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("KISMET2KML")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("filter.remove_encrypted", false)
	v.SetDefault("filter.remove_annoying", false)
	v.SetDefault("filter.remove_hidden", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks values viper cannot type-check on its own.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return eris.Errorf("config: log.format must be json or console (got %q)", c.Log.Format)
	}
	return nil
}

// InitLogger initializes the global zap logger. Both formats log to stderr.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
