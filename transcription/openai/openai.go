// Package openai implements transcription via the hosted OpenAI Whisper API.
package openai

import (
	"context"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/skillsenselab/scribekit/errors"
	"github.com/skillsenselab/scribekit/provider"
	"github.com/skillsenselab/scribekit/transcript"
	"github.com/skillsenselab/scribekit/transcription"
)

const (
	// ProviderName is the registered name for the OpenAI provider.
	ProviderName = "openai"

	defaultModel   = goopenai.Whisper1
	defaultTimeout = 300 * time.Second
)

// Config holds configuration for the OpenAI transcription provider.
type Config struct {
	// APIKey authenticates against the OpenAI API.
	APIKey string `json:"api_key" yaml:"api_key" mapstructure:"api_key"`
	// Model is the hosted model identifier (defaults to whisper-1).
	Model string `json:"model,omitempty" yaml:"model" mapstructure:"model"`
	// Language is the expected audio language (empty = auto-detect).
	Language string `json:"language,omitempty" yaml:"language" mapstructure:"language"`
	// Timeout bounds a single transcription call.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Provider implements transcription.Provider against the OpenAI audio API.
type Provider struct {
	cfg    Config
	client *goopenai.Client
}

// NewProvider creates a new OpenAI transcription provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.MissingField("api_key")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{
		cfg:    cfg,
		client: goopenai.NewClient(cfg.APIKey),
	}, nil
}

// Factory returns a provider.Factory that creates OpenAI Provider
// instances from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		oc := Config{}
		if v, ok := cfg["api_key"].(string); ok {
			oc.APIKey = v
		}
		if v, ok := cfg["model"].(string); ok {
			oc.Model = v
		}
		if v, ok := cfg["language"].(string); ok {
			oc.Language = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			oc.Timeout = v
		}
		return NewProvider(oc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the provider is configured. The hosted API has
// no cheap health endpoint, so availability means a key is present.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return p.cfg.APIKey != ""
}

// Transcribe uploads the audio file and returns time-aligned segments.
func (p *Provider) Transcribe(ctx context.Context, req transcription.TranscriptionRequest) (*transcription.TranscriptionResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	lang := p.cfg.Language
	if req.Language != "" {
		lang = req.Language
	}

	resp, err := p.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    model,
		FilePath: req.AudioPath,
		Language: lang,
		Format:   goopenai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, errors.TranscriptionFailed(ProviderName, err)
	}

	segments := make([]transcript.Segment, len(resp.Segments))
	for i, seg := range resp.Segments {
		segments[i] = transcript.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		}
	}

	return &transcription.TranscriptionResponse{
		Text:     resp.Text,
		Segments: segments,
		Duration: resp.Duration,
		Language: resp.Language,
	}, nil
}
