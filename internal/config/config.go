package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Service ServiceConfig `mapstructure:"service" validate:"required"`
	Log     LogConfig     `mapstructure:"log"     validate:"required"`
	Render  RenderConfig  `mapstructure:"render"  validate:"required"`
}

// ServiceConfig locates the study service that hosts both the generation
// endpoints and the project store.
type ServiceConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// Timeout bounds every request, including reading the body. There is
	// no automatic retry.
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// RenderConfig controls how generated content is printed.
type RenderConfig struct {
	Width  int    `mapstructure:"width"  validate:"gte=20,lte=400"`
	Format string `mapstructure:"format" validate:"required,oneof=text html"`
}
