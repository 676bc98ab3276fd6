// Package silence implements a heuristic diarization backend that detects
// speech intervals with ffmpeg's silencedetect filter and alternates speaker
// labels across long gaps. It needs no model service and is meant as an
// offline fallback, not a replacement for a real diarization pipeline.
package silence

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/skillsenselab/scribekit/diarization"
	"github.com/skillsenselab/scribekit/errors"
	"github.com/skillsenselab/scribekit/media"
	"github.com/skillsenselab/scribekit/process"
	"github.com/skillsenselab/scribekit/provider"
)

const (
	// ProviderName is the registered name for the silence provider.
	ProviderName = "silence"

	defaultNoiseFloor  = "-30dB"
	defaultMinSilence  = 0.5
	defaultSwitchGap   = 1.5
	speakerLabelFormat = "SPEAKER_%02d"
)

// Config holds configuration for the silence diarization provider.
type Config struct {
	// NoiseFloor is the silencedetect noise threshold (e.g. "-30dB").
	NoiseFloor string `json:"noise_floor" yaml:"noise_floor" mapstructure:"noise_floor"`
	// MinSilence is the minimum silence duration in seconds to register a gap.
	MinSilence float64 `json:"min_silence" yaml:"min_silence" mapstructure:"min_silence"`
	// SwitchGap is the gap length in seconds beyond which the speaker
	// label alternates.
	SwitchGap float64 `json:"switch_gap" yaml:"switch_gap" mapstructure:"switch_gap"`
}

// Provider implements diarization.Provider using ffmpeg silence detection.
type Provider struct {
	cfg Config
}

// NewProvider creates a new silence diarization provider.
func NewProvider(cfg Config) *Provider {
	if cfg.NoiseFloor == "" {
		cfg.NoiseFloor = defaultNoiseFloor
	}
	if cfg.MinSilence == 0 {
		cfg.MinSilence = defaultMinSilence
	}
	if cfg.SwitchGap == 0 {
		cfg.SwitchGap = defaultSwitchGap
	}
	return &Provider{cfg: cfg}
}

// Factory returns a provider.Factory that creates silence Provider
// instances from a generic config map.
func Factory() provider.Factory[diarization.Provider] {
	return func(cfg map[string]any) (diarization.Provider, error) {
		sc := Config{}
		if v, ok := cfg["noise_floor"].(string); ok {
			sc.NoiseFloor = v
		}
		if v, ok := cfg["min_silence"].(float64); ok {
			sc.MinSilence = v
		}
		if v, ok := cfg["switch_gap"].(float64); ok {
			sc.SwitchGap = v
		}
		return NewProvider(sc), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether ffmpeg can be resolved via PATH.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return process.LookPath("ffmpeg")
}

// Diarize detects silence gaps and derives alternating speaker turns.
func (p *Provider) Diarize(ctx context.Context, req diarization.DiarizationRequest) (*diarization.DiarizationResponse, error) {
	duration, err := media.Duration(req.AudioPath)
	if err != nil {
		return nil, err
	}

	result, err := process.Run(ctx, process.Command{
		Binary: "ffmpeg",
		Args: []string{
			"-hide_banner",
			"-i", req.AudioPath,
			"-af", fmt.Sprintf("silencedetect=noise=%s:d=%g", p.cfg.NoiseFloor, p.cfg.MinSilence),
			"-f", "null", "-",
		},
	})
	if err != nil {
		return nil, errors.DiarizationFailed(ProviderName, err)
	}

	silences := parseSilences(string(result.Stderr))
	turns := p.buildTurns(silences, duration, req.MaxSpeakers)

	speakers := make(map[string]struct{})
	for _, turn := range turns {
		speakers[turn.Speaker] = struct{}{}
	}

	return &diarization.DiarizationResponse{
		Turns:       turns,
		NumSpeakers: len(speakers),
	}, nil
}

// silenceGap is one detected silence interval.
type silenceGap struct {
	start float64
	end   float64
}

// parseSilences extracts silence_start/silence_end pairs from silencedetect's
// stderr output.
func parseSilences(stderr string) []silenceGap {
	var gaps []silenceGap
	var pending *silenceGap

	for _, line := range strings.Split(stderr, "\n") {
		if idx := strings.Index(line, "silence_start:"); idx != -1 {
			v := firstFloat(line[idx+len("silence_start:"):])
			pending = &silenceGap{start: v}
			continue
		}
		if idx := strings.Index(line, "silence_end:"); idx != -1 && pending != nil {
			pending.end = firstFloat(line[idx+len("silence_end:"):])
			gaps = append(gaps, *pending)
			pending = nil
		}
	}
	return gaps
}

func firstFloat(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return v
}

// buildTurns converts silence gaps into speech turns with alternating labels.
// The label switches when the preceding gap exceeds SwitchGap, capped at
// maxSpeakers when positive.
func (p *Provider) buildTurns(gaps []silenceGap, duration float64, maxSpeakers int) []diarization.Turn {
	numLabels := 2
	if maxSpeakers > 0 && maxSpeakers < numLabels {
		numLabels = maxSpeakers
	}

	var turns []diarization.Turn
	speaker := 0
	cursor := 0.0

	emit := func(start, end float64) {
		if end-start <= 0 {
			return
		}
		turns = append(turns, diarization.Turn{
			Speaker: fmt.Sprintf(speakerLabelFormat, speaker),
			Start:   start,
			End:     end,
		})
	}

	for _, gap := range gaps {
		emit(cursor, gap.start)
		if gap.end-gap.start > p.cfg.SwitchGap {
			speaker = (speaker + 1) % numLabels
		}
		cursor = gap.end
	}
	emit(cursor, duration)

	return turns
}
