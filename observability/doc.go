// Package observability wires OpenTelemetry tracing and metrics for
// scribekit. Traces cover the pipeline stages (diarize, slice, transcribe)
// and metrics count turns processed and seconds of audio transcribed.
// Both export over OTLP HTTP and are optional at runtime.
package observability
