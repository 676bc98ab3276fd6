package config

import (
	"fmt"

	"github.com/skillsenselab/scribekit/diarization/pyannote"
	"github.com/skillsenselab/scribekit/diarization/silence"
	"github.com/skillsenselab/scribekit/logger"
	"github.com/skillsenselab/scribekit/server"
	"github.com/skillsenselab/scribekit/transcription/openai"
	"github.com/skillsenselab/scribekit/transcription/whisper"
)

// Config is the root scribekit configuration.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`

	Transcription TranscriptionConfig `yaml:"transcription" mapstructure:"transcription"`
	Diarization   DiarizationConfig   `yaml:"diarization" mapstructure:"diarization"`
	Pipeline      PipelineConfig      `yaml:"pipeline" mapstructure:"pipeline"`
	Server        server.Config       `yaml:"server" mapstructure:"server"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// TranscriptionConfig selects and configures the transcription backend.
type TranscriptionConfig struct {
	// Provider names the active backend: "whisper" or "openai".
	Provider string         `yaml:"provider" mapstructure:"provider"`
	Whisper  whisper.Config `yaml:"whisper" mapstructure:"whisper"`
	OpenAI   openai.Config  `yaml:"openai" mapstructure:"openai"`
}

// DiarizationConfig selects and configures the diarization backend.
type DiarizationConfig struct {
	// Provider names the active backend: "pyannote" or "silence".
	Provider string          `yaml:"provider" mapstructure:"provider"`
	Pyannote pyannote.Config `yaml:"pyannote" mapstructure:"pyannote"`
	Silence  silence.Config  `yaml:"silence" mapstructure:"silence"`
}

// PipelineConfig tunes the transcription pipeline.
type PipelineConfig struct {
	Language       string  `yaml:"language" mapstructure:"language"`
	NumSpeakers    int     `yaml:"num_speakers" mapstructure:"num_speakers"`
	MinSpeakers    int     `yaml:"min_speakers" mapstructure:"min_speakers"`
	MaxSpeakers    int     `yaml:"max_speakers" mapstructure:"max_speakers"`
	MinTurnSeconds float64 `yaml:"min_turn_seconds" mapstructure:"min_turn_seconds"`
	MergeGap       float64 `yaml:"merge_gap" mapstructure:"merge_gap"`
	WorkDir        string  `yaml:"work_dir" mapstructure:"work_dir"`
}

// ObservabilityConfig configures OTLP tracing and metrics export.
type ObservabilityConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "scribekit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()

	if c.Transcription.Provider == "" {
		c.Transcription.Provider = "whisper"
	}
	if c.Diarization.Provider == "" {
		c.Diarization.Provider = "pyannote"
	}
	if c.Pipeline.MinTurnSeconds == 0 {
		c.Pipeline.MinTurnSeconds = 0.3
	}
	if c.Observability.Enabled {
		if c.Observability.Endpoint == "" {
			c.Observability.Endpoint = "localhost:4318"
		}
		if c.Observability.SampleRate == 0 {
			c.Observability.SampleRate = 1.0
		}
	}
	c.Server.ApplyDefaults()
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}

	switch c.Transcription.Provider {
	case "whisper", "openai":
	default:
		return fmt.Errorf("config.transcription.provider must be one of [whisper, openai] (got: %s)", c.Transcription.Provider)
	}
	switch c.Diarization.Provider {
	case "pyannote", "silence":
	default:
		return fmt.Errorf("config.diarization.provider must be one of [pyannote, silence] (got: %s)", c.Diarization.Provider)
	}

	if c.Pipeline.MinSpeakers > 0 && c.Pipeline.MaxSpeakers > 0 &&
		c.Pipeline.MinSpeakers > c.Pipeline.MaxSpeakers {
		return fmt.Errorf("config.pipeline: min_speakers (%d) exceeds max_speakers (%d)",
			c.Pipeline.MinSpeakers, c.Pipeline.MaxSpeakers)
	}
	if c.Pipeline.MergeGap < 0 {
		return fmt.Errorf("config.pipeline.merge_gap must not be negative (got: %v)", c.Pipeline.MergeGap)
	}

	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if c.Observability.Enabled {
		if c.Observability.SampleRate < 0 || c.Observability.SampleRate > 1 {
			return fmt.Errorf("config.observability.sample_rate must be in [0, 1] (got: %v)", c.Observability.SampleRate)
		}
	}
	return nil
}
