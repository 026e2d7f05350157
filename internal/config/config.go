// Package config provides centralized configuration for formlens.
// Defaults live in the root command's viper setup; user overrides come
// from a YAML config file and environment variables.
package config

import "time"

// Config represents the complete application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Dialog  DialogConfig  `mapstructure:"dialog"`
	Image   ImageConfig   `mapstructure:"image"`
	Reshape ReshapeConfig `mapstructure:"reshape"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig contains database configuration for libsql/Turso.
type StoreConfig struct {
	Driver    string `mapstructure:"driver"`
	Path      string `mapstructure:"path"`
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
}

// DialogConfig contains prompt builder defaults.
type DialogConfig struct {
	// FieldsDir is scanned for *.yaml field definition files.
	FieldsDir string `mapstructure:"fields_dir"`
}

// ImageConfig contains image codec defaults.
type ImageConfig struct {
	// Format is the default encode target: png or jpeg.
	Format string `mapstructure:"format"`

	// MaxSize, when positive, caps the longest side on encode.
	MaxSize int `mapstructure:"max_size"`

	// JPEGQuality applies to jpeg encoding (1-100).
	JPEGQuality int `mapstructure:"jpeg_quality"`
}

// ReshapeConfig contains wide-to-long reshaper defaults.
type ReshapeConfig struct {
	KeyColumn   string `mapstructure:"key_column"`
	ValueColumn string `mapstructure:"value_column"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level.
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`
}
