// Package jobs manages asynchronous transcription jobs for the HTTP API.
//
// A job is created per uploaded recording, runs the pipeline in a
// background goroutine, and exposes its state through an in-memory store.
// Progress and lifecycle transitions are broadcast over the SSE hub so
// clients can follow a job without polling.
package jobs
