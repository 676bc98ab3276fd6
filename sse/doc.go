// Package sse streams transcription job events to clients over
// Server-Sent Events.
//
// The server publishes progress, completion, and failure events as a
// pipeline run advances; clients subscribe to a single job's stream and
// receive each event as it happens.
//
//   - Hub: routes published events to subscribed clients
//   - Broadcaster: the publishing side, implemented by Hub
//   - ServeSSE: HTTP handler body for a job event stream
//
// # Usage
//
//	hub := sse.NewHub()
//	go hub.Run()
//	sse.PublishProgress(hub, jobID, 0.5, 12*time.Second)
package sse
