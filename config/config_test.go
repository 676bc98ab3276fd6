package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "config.yml", `
name: scribekit
environment: production
transcription:
  provider: whisper
  whisper:
    url: http://localhost:9000
    model_dir: /models/whisper-small
diarization:
  provider: silence
  silence:
    noise_floor: "-35dB"
pipeline:
  merge_gap: 0.75
  max_speakers: 4
`)

	var cfg Config
	if err := LoadConfig("scribekit", &cfg, WithConfigFile(configFile)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("expected environment production, got %q", cfg.Environment)
	}
	if cfg.Transcription.Whisper.ModelDir != "/models/whisper-small" {
		t.Errorf("expected model_dir from file, got %q", cfg.Transcription.Whisper.ModelDir)
	}
	if cfg.Diarization.Provider != "silence" {
		t.Errorf("expected diarization provider silence, got %q", cfg.Diarization.Provider)
	}
	if cfg.Diarization.Silence.NoiseFloor != "-35dB" {
		t.Errorf("expected noise_floor -35dB, got %q", cfg.Diarization.Silence.NoiseFloor)
	}
	if cfg.Pipeline.MergeGap != 0.75 {
		t.Errorf("expected merge_gap 0.75, got %v", cfg.Pipeline.MergeGap)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "config.yml", `
transcription:
  whisper:
    model_dir: /from/file
`)
	t.Setenv("TRANSCRIPTION_WHISPER_MODEL_DIR", "/from/env")

	var cfg Config
	if err := LoadConfig("scribekit", &cfg, WithConfigFile(configFile)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Transcription.Whisper.ModelDir != "/from/env" {
		t.Errorf("expected env to override file, got %q", cfg.Transcription.Whisper.ModelDir)
	}
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "DIARIZATION_PROVIDER=pyannote\n")

	var cfg Config
	if err := LoadConfig("scribekit", &cfg, WithEnvFile(envFile)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Diarization.Provider != "pyannote" {
		t.Errorf("expected provider from .env, got %q", cfg.Diarization.Provider)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Name != "scribekit" {
		t.Errorf("expected default name scribekit, got %q", cfg.Name)
	}
	if cfg.Environment != "development" || !cfg.Debug {
		t.Errorf("expected development defaults, got env=%q debug=%v", cfg.Environment, cfg.Debug)
	}
	if cfg.Transcription.Provider != "whisper" {
		t.Errorf("expected default transcriber whisper, got %q", cfg.Transcription.Provider)
	}
	if cfg.Diarization.Provider != "pyannote" {
		t.Errorf("expected default diarizer pyannote, got %q", cfg.Diarization.Provider)
	}
	if cfg.Pipeline.MinTurnSeconds != 0.3 {
		t.Errorf("expected default min_turn_seconds 0.3, got %v", cfg.Pipeline.MinTurnSeconds)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		var cfg Config
		cfg.ApplyDefaults()
		return cfg
	}

	defaults := valid()
	if err := defaults.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	cfg := valid()
	cfg.Environment = "qa"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown environment")
	}

	cfg = valid()
	cfg.Transcription.Provider = "parakeet"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown transcription provider")
	}

	cfg = valid()
	cfg.Pipeline.MinSpeakers = 5
	cfg.Pipeline.MaxSpeakers = 2
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when min_speakers exceeds max_speakers")
	}

	cfg = valid()
	cfg.Pipeline.MergeGap = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative merge_gap")
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	variants := generateEnvKeyVariants("PIPELINE_MERGE_GAP")
	want := map[string]bool{
		"pipeline_merge_gap": false,
		"pipeline.merge.gap": false,
		"pipeline.merge_gap": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Errorf("expected variant %q in %v", key, variants)
		}
	}
}
