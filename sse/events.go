package sse

import (
	"encoding/json"
	"fmt"
	"time"
)

// SSE event type constants for the job event stream.
const (
	// EventTypeConnected is sent when a client successfully connects.
	EventTypeConnected = "connected"

	// EventTypeProgress reports pipeline progress for a job.
	EventTypeProgress = "progress"

	// EventTypeStage reports that a job entered a new pipeline stage.
	EventTypeStage = "stage"

	// EventTypeCompleted is sent once when a job finishes successfully.
	EventTypeCompleted = "completed"

	// EventTypeFailed is sent once when a job fails.
	EventTypeFailed = "failed"
)

// Envelope wraps a job event with its type so clients can dispatch
// without inspecting the payload.
type Envelope struct {
	Type    string      `json:"type"`
	JobID   string      `json:"job_id"`
	Payload interface{} `json:"payload,omitempty"`
}

// ProgressEvent reports how far a job has advanced.
type ProgressEvent struct {
	Fraction   float64 `json:"fraction"`
	ETASeconds float64 `json:"eta_seconds"`
}

// StageEvent reports the pipeline stage a job entered.
type StageEvent struct {
	Stage string `json:"stage"`
}

// CompletedEvent reports a finished job and where its outputs live.
type CompletedEvent struct {
	Segments int    `json:"segments"`
	SRTPath  string `json:"srt_path,omitempty"`
	JSONPath string `json:"json_path,omitempty"`
}

// FailedEvent carries the failure reason for a job.
type FailedEvent struct {
	Error string `json:"error"`
}

// jobPattern is the broadcast pattern matching every subscriber of a job.
func jobPattern(jobID string) string {
	return fmt.Sprintf("job:%s:*", jobID)
}

// ClientID builds the hub client ID for a subscriber of the given job.
func ClientID(jobID, subscriberID string) string {
	return fmt.Sprintf("job:%s:%s", jobID, subscriberID)
}

func publish(b Broadcaster, jobID, eventType string, payload interface{}) {
	data, err := json.Marshal(Envelope{Type: eventType, JobID: jobID, Payload: payload})
	if err != nil {
		return
	}
	b.BroadcastToPattern(jobPattern(jobID), data)
}

// PublishProgress broadcasts a progress event to a job's subscribers.
func PublishProgress(b Broadcaster, jobID string, fraction float64, eta time.Duration) {
	publish(b, jobID, EventTypeProgress, ProgressEvent{
		Fraction:   fraction,
		ETASeconds: eta.Seconds(),
	})
}

// PublishStage broadcasts a stage transition to a job's subscribers.
func PublishStage(b Broadcaster, jobID, stage string) {
	publish(b, jobID, EventTypeStage, StageEvent{Stage: stage})
}

// PublishCompleted broadcasts job completion to a job's subscribers.
func PublishCompleted(b Broadcaster, jobID string, event CompletedEvent) {
	publish(b, jobID, EventTypeCompleted, event)
}

// PublishFailed broadcasts job failure to a job's subscribers.
func PublishFailed(b Broadcaster, jobID string, reason string) {
	publish(b, jobID, EventTypeFailed, FailedEvent{Error: reason})
}
