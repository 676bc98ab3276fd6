package server

import (
	"fmt"

	"github.com/skillsenselab/scribekit/server/middleware"
)

// Config holds HTTP server configuration.
type Config struct {
	Host             string                `yaml:"host" mapstructure:"host"`
	Port             int                   `yaml:"port" mapstructure:"port"`
	ReadTimeout      int                   `yaml:"read_timeout" mapstructure:"read_timeout"`   // seconds
	WriteTimeout     int                   `yaml:"write_timeout" mapstructure:"write_timeout"` // seconds
	IdleTimeout      int                   `yaml:"idle_timeout" mapstructure:"idle_timeout"`   // seconds
	MaxBodySize      string                `yaml:"max_body_size" mapstructure:"max_body_size"` // e.g. "500MB"
	UploadsPerMinute int                   `yaml:"uploads_per_minute" mapstructure:"uploads_per_minute"`
	CORS             middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8386
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 60
	}
	if c.WriteTimeout == 0 {
		// Write timeout covers long transcript downloads; SSE streams
		// disable the deadline per connection.
		c.WriteTimeout = 60
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 120
	}
	if c.MaxBodySize == "" {
		// Uploads are whole recordings, so the default is generous.
		c.MaxBodySize = "500MB"
	}
	if c.UploadsPerMinute == 0 {
		c.UploadsPerMinute = 10
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Origin", "Content-Type", "Accept"}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535 (got: %d)", c.Port)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("server.read_timeout must be non-negative (got: %d)", c.ReadTimeout)
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("server.write_timeout must be non-negative (got: %d)", c.WriteTimeout)
	}
	if c.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout must be non-negative (got: %d)", c.IdleTimeout)
	}
	if c.UploadsPerMinute < 0 {
		return fmt.Errorf("server.uploads_per_minute must be non-negative (got: %d)", c.UploadsPerMinute)
	}
	return nil
}
