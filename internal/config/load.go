package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// STUDYAID_SERVICE_BASE_URL.
const EnvPrefix = "STUDYAID"

// Default values.
const (
	DefaultBaseURL      = "http://127.0.0.1:8000"
	DefaultTimeout      = "30s"
	DefaultLogLevel     = "info"
	DefaultRenderWidth  = 80
	DefaultRenderFormat = "text"
)

// Load reads configuration from defaults, the optional configFile and
// environment variables, in increasing order of precedence, and validates
// the result. An empty configFile skips file loading.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("service.base_url", DefaultBaseURL)
	v.SetDefault("service.timeout", DefaultTimeout)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("render.width", DefaultRenderWidth)
	v.SetDefault("render.format", DefaultRenderFormat)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Render.Format = strings.ToLower(cfg.Render.Format)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
