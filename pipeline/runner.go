package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/skillsenselab/scribekit/diarization"
	"github.com/skillsenselab/scribekit/errors"
	"github.com/skillsenselab/scribekit/logger"
	"github.com/skillsenselab/scribekit/media"
	"github.com/skillsenselab/scribekit/observability"
	"github.com/skillsenselab/scribekit/transcript"
	"github.com/skillsenselab/scribekit/transcription"
)

// Options controls a pipeline run.
type Options struct {
	// Language hint forwarded to the transcription provider. Empty means
	// auto-detect.
	Language string

	// NumSpeakers pins the diarizer to an exact speaker count when > 0.
	NumSpeakers int
	// MinSpeakers / MaxSpeakers bound the diarizer's search when > 0.
	MinSpeakers int
	MaxSpeakers int

	// MinTurnSeconds drops diarized turns shorter than this. Sub-300ms
	// turns are usually breaths or cross-talk and waste a transcription
	// round trip. Zero means keep everything.
	MinTurnSeconds float64

	// MergeGap coalesces consecutive same-speaker segments whose gap is
	// at most this many seconds. Zero disables merging.
	MergeGap float64

	// WorkDir holds per-turn audio slices. Empty means os.TempDir().
	WorkDir string

	// Progress, when set, is invoked after each completed turn.
	Progress ProgressFunc
}

// Runner executes the transcription pipeline: diarize, slice, transcribe,
// assemble. A Runner is safe for sequential reuse across inputs.
type Runner struct {
	transcriber transcription.Provider
	diarizer    diarization.Provider
	log         *logger.Logger
	metrics     *observability.PipelineMetrics
	tracer      trace.Tracer

	// extract, slice, and probe default to the ffmpeg-backed media helpers
	// and are swappable for tests.
	extract func(ctx context.Context, input, dir string) (string, error)
	slice   func(ctx context.Context, input string, start, end float64, dir string) (string, error)
	probe   func(path string) (float64, error)
}

// NewRunner builds a Runner around the given providers.
func NewRunner(transcriber transcription.Provider, diarizer diarization.Provider) *Runner {
	metrics, _ := observability.NewPipelineMetrics()
	return &Runner{
		transcriber: transcriber,
		diarizer:    diarizer,
		log:         logger.Get("pipeline"),
		metrics:     metrics,
		tracer:      observability.Tracer("pipeline"),
		extract:     media.Extract,
		slice:       media.Slice,
		probe:       media.Duration,
	}
}

// Run transcribes audioPath into a speaker-labeled transcript. The first
// failing stage aborts the run and its error is returned.
func (r *Runner) Run(ctx context.Context, audioPath string, opts Options) (*transcript.Transcript, error) {
	ctx, span := r.tracer.Start(ctx, "pipeline.Run",
		trace.WithAttributes(attribute.String("audio.path", audioPath)))
	defer span.End()

	started := time.Now()

	if _, err := os.Stat(audioPath); err != nil {
		return nil, errors.NotFound("audio file", audioPath)
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = os.TempDir()
	}
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, errors.Internal(err)
	}

	// Non-WAV inputs (videos, mp3s) are normalized to mono 16 kHz WAV so
	// the header probe and per-turn slicing operate on a known format.
	workPath := audioPath
	if strings.ToLower(filepath.Ext(audioPath)) != ".wav" {
		extracted, err := r.extract(ctx, audioPath, workDir)
		if err != nil {
			return nil, err
		}
		defer os.Remove(extracted)
		workPath = extracted
	}

	total, err := r.probe(workPath)
	if err != nil {
		return nil, err
	}

	r.log.Info("pipeline started", logger.Fields(
		logger.FieldAudioPath, audioPath,
		"duration_sec", total,
		"transcriber", r.transcriber.Name(),
		"diarizer", r.diarizer.Name(),
	))

	turns, err := r.diarize(ctx, workPath, opts)
	if err != nil {
		return nil, err
	}

	segments, err := r.transcribeTurns(ctx, workPath, workDir, turns, total, opts)
	if err != nil {
		return nil, err
	}

	transcript.SortSegments(segments)
	if opts.MergeGap > 0 {
		segments = transcript.MergeAdjacent(segments, opts.MergeGap)
	}

	r.metrics.RecordRun(ctx)
	r.metrics.RecordStage(ctx, "total", time.Since(started).Seconds())
	r.log.Info("pipeline finished", logger.Fields(
		logger.FieldAudioPath, audioPath,
		"segments", len(segments),
		"elapsed", time.Since(started).String(),
	))

	return &transcript.Transcript{
		Source:   audioPath,
		Language: opts.Language,
		Duration: total,
		Segments: segments,
	}, nil
}

// RunToFiles runs the pipeline and writes prefix.srt and prefix.json.
func (r *Runner) RunToFiles(ctx context.Context, audioPath, prefix string, opts Options) (*transcript.Transcript, error) {
	t, err := r.Run(ctx, audioPath, opts)
	if err != nil {
		return nil, err
	}
	if _, _, err := transcript.SaveFiles(prefix, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Runner) diarize(ctx context.Context, audioPath string, opts Options) ([]diarization.Turn, error) {
	ctx, span := r.tracer.Start(ctx, "pipeline.diarize")
	defer span.End()

	started := time.Now()
	resp, err := r.diarizer.Diarize(ctx, diarization.DiarizationRequest{
		AudioPath:   audioPath,
		NumSpeakers: opts.NumSpeakers,
		MinSpeakers: opts.MinSpeakers,
		MaxSpeakers: opts.MaxSpeakers,
	})
	if err != nil {
		return nil, err
	}
	r.metrics.RecordStage(ctx, "diarize", time.Since(started).Seconds())

	turns := resp.Turns
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].Start < turns[j].Start
	})

	r.log.Info("diarization complete", logger.Fields(
		"turns", len(turns),
		"speakers", resp.NumSpeakers,
		"elapsed", time.Since(started).String(),
	))
	return turns, nil
}

func (r *Runner) transcribeTurns(ctx context.Context, audioPath, workDir string, turns []diarization.Turn, total float64, opts Options) ([]transcript.Segment, error) {
	est := newProgressEstimator(total)
	segments := make([]transcript.Segment, 0, len(turns))

	for i, turn := range turns {
		if err := ctx.Err(); err != nil {
			return nil, errors.Internal(err)
		}

		length := turn.End - turn.Start
		if opts.MinTurnSeconds > 0 && length < opts.MinTurnSeconds {
			r.reportProgress(est, turn.End, opts)
			continue
		}

		seg, err := r.transcribeTurn(ctx, audioPath, turn, workDir, opts)
		if err != nil {
			return nil, err
		}
		if seg.Text != "" {
			segments = append(segments, seg)
		}
		r.metrics.RecordTurn(ctx, turn.Speaker, length)
		r.reportProgress(est, turn.End, opts)

		r.log.Debug("turn transcribed", logger.Fields(
			logger.FieldSpeaker, turn.Speaker,
			"turn", i+1,
			"turns", len(turns),
			"start", turn.Start,
			"end", turn.End,
		))
	}

	// Trailing silence leaves the last turn short of the timeline end;
	// close it out so the callback finishes at 1.
	if est.position < est.total {
		r.reportProgress(est, est.total, opts)
	}
	return segments, nil
}

func (r *Runner) transcribeTurn(ctx context.Context, audioPath string, turn diarization.Turn, workDir string, opts Options) (transcript.Segment, error) {
	ctx, span := r.tracer.Start(ctx, "pipeline.transcribeTurn",
		trace.WithAttributes(attribute.String("speaker", turn.Speaker)))
	defer span.End()

	slicePath, err := r.slice(ctx, audioPath, turn.Start, turn.End, workDir)
	if err != nil {
		return transcript.Segment{}, err
	}
	defer os.Remove(slicePath)

	resp, err := r.transcriber.Transcribe(ctx, transcription.TranscriptionRequest{
		AudioPath: slicePath,
		Language:  opts.Language,
	})
	if err != nil {
		return transcript.Segment{}, err
	}

	return transcript.Segment{
		Start:   turn.Start,
		End:     turn.End,
		Speaker: turn.Speaker,
		Text:    resp.Text,
	}, nil
}

func (r *Runner) reportProgress(est *progressEstimator, position float64, opts Options) {
	fraction, eta := est.advanceTo(position)
	if opts.Progress != nil {
		opts.Progress(fraction, eta)
	}
}

// DefaultWorkDir returns a per-run scratch directory under the system temp
// directory. Callers own cleanup.
func DefaultWorkDir() (string, error) {
	dir, err := os.MkdirTemp("", "scribekit-*")
	if err != nil {
		return "", errors.Internal(err)
	}
	return filepath.Clean(dir), nil
}
