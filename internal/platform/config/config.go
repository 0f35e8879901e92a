// Package config loads process configuration from defaults, an optional
// config.yaml, and environment variables.
package config

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Docs     DocsConfig     `mapstructure:"docs"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port        int      `mapstructure:"port"         validate:"gt=0,lt=65536"`
	LogLevel    string   `mapstructure:"log_level"    validate:"oneof=debug info warn error"`
	BodyLimit   int64    `mapstructure:"body_limit"   validate:"gt=0"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// DatabaseConfig contains the sqlite file location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AuthConfig controls bearer token verification. An empty JWTSecret keeps
// tokens opaque.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"omitempty,min=32"`
}

// DocsConfig points at the generated OpenAPI document.
type DocsConfig struct {
	SpecPath string `mapstructure:"spec_path" validate:"required"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
