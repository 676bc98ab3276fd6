package whisper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/skillsenselab/scribekit/errors"
	"github.com/skillsenselab/scribekit/transcription"
)

func modelDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "whisper-base")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestNewProvider_MissingModelDir(t *testing.T) {
	_, err := NewProvider(Config{ModelDir: "/does/not/exist"})
	if err == nil {
		t.Fatal("expected error for missing model directory")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeModelNotFound {
		t.Errorf("expected MODEL_NOT_FOUND, got %s", appErr.Code)
	}
	if appErr.Details["path"] != "/does/not/exist" {
		t.Errorf("expected path detail, got %v", appErr.Details)
	}
}

func TestNewProvider_EmptyModelDir(t *testing.T) {
	_, err := NewProvider(Config{})
	if err == nil {
		t.Fatal("expected error for empty model_dir")
	}
}

func TestNewProvider_Defaults(t *testing.T) {
	p, err := NewProvider(Config{ModelDir: modelDir(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.cfg.URL != defaultWhisperURL {
		t.Errorf("expected default URL, got %q", p.cfg.URL)
	}
	if p.cfg.Timeout != defaultWhisperTimeout {
		t.Errorf("expected default timeout, got %v", p.cfg.Timeout)
	}
	if p.Name() != ProviderName {
		t.Errorf("expected name %q, got %q", ProviderName, p.Name())
	}
}

func TestTranscribe_ParsesSidecarResponse(t *testing.T) {
	dir := modelDir(t)

	var gotModelDir string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotModelDir = r.FormValue("model_dir")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"text": "hello world",
			"language": "en",
			"segments": [
				{"text": "hello", "start": 0.0, "end": 1.0},
				{"text": "world", "start": 1.2, "end": 2.4}
			]
		}`))
	}))
	defer srv.Close()

	audio := filepath.Join(t.TempDir(), "turn.wav")
	if err := os.WriteFile(audio, []byte("RIFFfake"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := NewProvider(Config{URL: srv.URL, ModelDir: dir})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Transcribe(context.Background(), transcription.TranscriptionRequest{AudioPath: audio})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "hello world" {
		t.Errorf("unexpected text %q", resp.Text)
	}
	if len(resp.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(resp.Segments))
	}
	if resp.Segments[1].End != 2.4 {
		t.Errorf("unexpected segment end %v", resp.Segments[1].End)
	}
	if resp.Duration != 2.4 {
		t.Errorf("expected duration from last segment, got %v", resp.Duration)
	}
	if gotModelDir != dir {
		t.Errorf("expected model_dir %q forwarded, got %q", dir, gotModelDir)
	}
}

func TestTranscribe_SidecarError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model load failed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	audio := filepath.Join(t.TempDir(), "turn.wav")
	if err := os.WriteFile(audio, []byte("RIFFfake"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := NewProvider(Config{URL: srv.URL, ModelDir: modelDir(t)})
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.Transcribe(context.Background(), transcription.TranscriptionRequest{AudioPath: audio})
	if err == nil {
		t.Fatal("expected error for sidecar failure")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeTranscriptionFailed {
		t.Errorf("expected TRANSCRIPTION_FAILED, got %v", err)
	}
}

func TestIsAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	p, err := NewProvider(Config{URL: srv.URL, ModelDir: modelDir(t)})
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsAvailable(context.Background()) {
		t.Error("expected provider to be available")
	}

	srv.Close()
	if p.IsAvailable(context.Background()) {
		t.Error("expected provider to be unavailable after server close")
	}
}
