// Package diarization defines the provider interface and common types for
// interacting with speaker diarization backends.
//
// # Backends
//
//   - diarization/pyannote: pyannote.audio pipeline behind an HTTP sidecar
//   - diarization/silence: offline gap-threshold heuristic, no service needed
package diarization
