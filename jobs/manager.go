package jobs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/skillsenselab/scribekit/logger"
	"github.com/skillsenselab/scribekit/pipeline"
	"github.com/skillsenselab/scribekit/sse"
	"github.com/skillsenselab/scribekit/transcript"
	"github.com/skillsenselab/scribekit/validation"
)

// PipelineRunner runs a full transcription and writes the output files.
// Satisfied by *pipeline.Runner.
type PipelineRunner interface {
	RunToFiles(ctx context.Context, audioPath, prefix string, opts pipeline.Options) (*transcript.Transcript, error)
}

// Manager executes jobs against the pipeline and publishes their progress.
type Manager struct {
	store   *Store
	runner  PipelineRunner
	events  sse.Broadcaster
	opts    pipeline.Options
	dataDir string
	log     *logger.Logger
}

// NewManager wires a Manager. dataDir receives per-job upload and output
// files; opts are the base pipeline options applied to every job.
func NewManager(store *Store, runner PipelineRunner, events sse.Broadcaster, dataDir string, opts pipeline.Options) *Manager {
	return &Manager{
		store:   store,
		runner:  runner,
		events:  events,
		opts:    opts,
		dataDir: dataDir,
		log:     logger.Get("jobs"),
	}
}

// Store returns the underlying job store.
func (m *Manager) Store() *Store {
	return m.store
}

// SubmitRequest carries the client-supplied options for a new job.
type SubmitRequest struct {
	Filename    string `json:"filename"`
	Language    string `json:"language" validate:"omitempty,alpha,max=8"`
	NumSpeakers int    `json:"num_speakers" validate:"omitempty,min=1,max=32"`
}

// Submit creates a job for the uploaded audio file and starts processing it
// in the background. audioPath must already be on local disk.
func (m *Manager) Submit(audioPath string, req SubmitRequest) (*Job, error) {
	if err := validation.Validate(&req); err != nil {
		return nil, err
	}

	job := m.store.Create(req.Filename, req.Language)

	m.log.Info("job accepted", logger.Fields(
		logger.FieldJobID, job.ID,
		"filename", req.Filename,
	))

	go m.run(job.ID, audioPath, req)
	return job, nil
}

func (m *Manager) run(jobID, audioPath string, req SubmitRequest) {
	started := time.Now().UTC()
	_ = m.store.Update(jobID, func(j *Job) {
		j.Status = StatusRunning
		j.StartedAt = &started
	})
	sse.PublishStage(m.events, jobID, "running")

	opts := m.opts
	if req.Language != "" {
		opts.Language = req.Language
	}
	if req.NumSpeakers > 0 {
		opts.NumSpeakers = req.NumSpeakers
	}
	opts.Progress = func(fraction float64, eta time.Duration) {
		_ = m.store.Update(jobID, func(j *Job) {
			j.Fraction = fraction
			j.ETASeconds = eta.Seconds()
		})
		sse.PublishProgress(m.events, jobID, fraction, eta)
	}

	prefix := filepath.Join(m.dataDir, jobID, "transcript")
	if err := os.MkdirAll(filepath.Dir(prefix), 0o755); err != nil {
		m.fail(jobID, err)
		return
	}

	result, err := m.runner.RunToFiles(context.Background(), audioPath, prefix, opts)
	if err != nil {
		m.fail(jobID, err)
		return
	}

	finished := time.Now().UTC()
	_ = m.store.Update(jobID, func(j *Job) {
		j.Status = StatusCompleted
		j.FinishedAt = &finished
		j.Fraction = 1
		j.ETASeconds = 0
		j.Segments = len(result.Segments)
		j.SRTPath = prefix + ".srt"
		j.JSONPath = prefix + ".json"
	})
	sse.PublishCompleted(m.events, jobID, sse.CompletedEvent{
		Segments: len(result.Segments),
		SRTPath:  prefix + ".srt",
		JSONPath: prefix + ".json",
	})

	m.log.Info("job completed", logger.Fields(
		logger.FieldJobID, jobID,
		"segments", len(result.Segments),
		"elapsed", time.Since(started).String(),
	))
}

func (m *Manager) fail(jobID string, err error) {
	finished := time.Now().UTC()
	_ = m.store.Update(jobID, func(j *Job) {
		j.Status = StatusFailed
		j.FinishedAt = &finished
		j.Error = err.Error()
	})
	sse.PublishFailed(m.events, jobID, err.Error())

	m.log.Error("job failed", logger.Fields(
		logger.FieldJobID, jobID,
		logger.FieldError, err.Error(),
	))
}
