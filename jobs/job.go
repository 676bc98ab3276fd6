package jobs

import "time"

// Status is the lifecycle state of a job.
type Status string

const (
	// StatusQueued means the job is accepted but not yet running.
	StatusQueued Status = "queued"
	// StatusRunning means the pipeline is processing the recording.
	StatusRunning Status = "running"
	// StatusCompleted means the transcript files are ready.
	StatusCompleted Status = "completed"
	// StatusFailed means the pipeline aborted with an error.
	StatusFailed Status = "failed"
)

// Job is one transcription request and its current state.
type Job struct {
	ID         string     `json:"id"`
	Status     Status     `json:"status"`
	Filename   string     `json:"filename"`
	Language   string     `json:"language,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// Fraction and ETASeconds reflect the latest progress report.
	Fraction   float64 `json:"fraction"`
	ETASeconds float64 `json:"eta_seconds,omitempty"`

	// Populated on completion.
	Segments int    `json:"segments,omitempty"`
	SRTPath  string `json:"-"`
	JSONPath string `json:"-"`

	// Populated on failure.
	Error string `json:"error,omitempty"`
}

// Done reports whether the job reached a terminal state.
func (j *Job) Done() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}
