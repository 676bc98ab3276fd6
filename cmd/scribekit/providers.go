package main

import (
	"context"

	"github.com/skillsenselab/scribekit/config"
	"github.com/skillsenselab/scribekit/diarization"
	"github.com/skillsenselab/scribekit/diarization/pyannote"
	"github.com/skillsenselab/scribekit/diarization/silence"
	"github.com/skillsenselab/scribekit/logger"
	"github.com/skillsenselab/scribekit/pipeline"
	"github.com/skillsenselab/scribekit/transcription"
	"github.com/skillsenselab/scribekit/transcription/openai"
	"github.com/skillsenselab/scribekit/transcription/whisper"
	"github.com/skillsenselab/scribekit/util"
)

// buildTranscriber initializes the configured transcription provider
// through the provider manager.
func buildTranscriber(ctx context.Context, cfg *config.Config) (transcription.Provider, error) {
	mgr := transcription.NewManager()
	mgr.Register(whisper.ProviderName, whisper.Factory())
	mgr.Register(openai.ProviderName, openai.Factory())

	name := cfg.Transcription.Provider
	var err error
	switch name {
	case openai.ProviderName:
		oc := cfg.Transcription.OpenAI
		logger.Debug("using hosted transcription", map[string]interface{}{
			"api_key": util.MaskSecret(oc.APIKey, 4),
			"model":   oc.Model,
		})
		err = mgr.Initialize(name, map[string]any{
			"api_key":  oc.APIKey,
			"model":    oc.Model,
			"language": oc.Language,
			"timeout":  oc.Timeout,
		})
	default:
		wc := cfg.Transcription.Whisper
		err = mgr.Initialize(name, map[string]any{
			"url":          wc.URL,
			"model_dir":    wc.ModelDir,
			"language":     wc.Language,
			"device":       wc.Device,
			"compute_type": wc.ComputeType,
			"timeout":      wc.Timeout,
		})
	}
	if err != nil {
		return nil, err
	}

	mgr.SetDefault(name)
	return mgr.Get(ctx)
}

// buildDiarizer initializes the configured diarization provider.
func buildDiarizer(ctx context.Context, cfg *config.Config) (diarization.Provider, error) {
	mgr := diarization.NewManager()
	mgr.Register(pyannote.ProviderName, pyannote.Factory())
	mgr.Register(silence.ProviderName, silence.Factory())

	name := cfg.Diarization.Provider
	var err error
	switch name {
	case silence.ProviderName:
		sc := cfg.Diarization.Silence
		err = mgr.Initialize(name, map[string]any{
			"noise_floor": sc.NoiseFloor,
			"min_silence": sc.MinSilence,
			"switch_gap":  sc.SwitchGap,
		})
	default:
		pc := cfg.Diarization.Pyannote
		err = mgr.Initialize(name, map[string]any{
			"base_url": pc.BaseURL,
			"timeout":  pc.Timeout,
		})
	}
	if err != nil {
		return nil, err
	}

	mgr.SetDefault(name)
	return mgr.Get(ctx)
}

// pipelineOptions maps the config's pipeline section onto runner options.
func pipelineOptions(cfg *config.Config) pipeline.Options {
	return pipeline.Options{
		Language:       cfg.Pipeline.Language,
		NumSpeakers:    cfg.Pipeline.NumSpeakers,
		MinSpeakers:    cfg.Pipeline.MinSpeakers,
		MaxSpeakers:    cfg.Pipeline.MaxSpeakers,
		MinTurnSeconds: cfg.Pipeline.MinTurnSeconds,
		MergeGap:       cfg.Pipeline.MergeGap,
		WorkDir:        cfg.Pipeline.WorkDir,
	}
}
