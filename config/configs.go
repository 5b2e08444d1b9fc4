package config

import (
	"fmt"

	"github.com/aalemi-dev/calltrace/interceptor"
	"github.com/aalemi-dev/calltrace/logger"
	"github.com/aalemi-dev/calltrace/selector"
)

// DefaultServiceName is used for the logger "service" field when none is configured.
const DefaultServiceName = "calltrace"

// Config is the root of the configuration file.
type Config struct {
	Logger      logger.Config      `yaml:"logger"`
	Selector    selector.Config    `yaml:"selector"`
	Interceptor interceptor.Config `yaml:"interceptor"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = logger.Info
	}
	if cfg.Logger.Encoding == "" {
		cfg.Logger.Encoding = logger.JSONEncoding
	}
	if cfg.Logger.ServiceName == "" {
		cfg.Logger.ServiceName = DefaultServiceName
	}
	if cfg.Selector.TypeMarker == "" {
		cfg.Selector.TypeMarker = selector.DefaultMarker
	}
	if cfg.Selector.MethodMarker == "" {
		cfg.Selector.MethodMarker = selector.DefaultMarker
	}
}

// Validate rejects values the components would otherwise silently replace.
// Load and Parse call it; callers that override fields afterwards call it again.
func (cfg Config) Validate() error {
	switch cfg.Logger.Level {
	case logger.Debug, logger.Info, logger.Warning, logger.Error:
	default:
		return fmt.Errorf("%w: unknown logger level %q", ErrInvalidConfig, cfg.Logger.Level)
	}
	switch cfg.Logger.Encoding {
	case logger.JSONEncoding, logger.ConsoleEncoding:
	default:
		return fmt.Errorf("%w: unknown logger encoding %q", ErrInvalidConfig, cfg.Logger.Encoding)
	}
	if cfg.Logger.File.MaxSizeMB < 0 || cfg.Logger.File.MaxBackups < 0 || cfg.Logger.File.MaxAgeDays < 0 {
		return fmt.Errorf("%w: logger file limits must not be negative", ErrInvalidConfig)
	}
	return nil
}
