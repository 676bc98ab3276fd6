// Package transcription defines the provider interface and common types
// for interacting with speech-to-text backends.
//
// It follows scribekit's provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Backends
//
//   - transcription/whisper: local Whisper checkpoint served by a
//     faster-whisper sidecar
//   - transcription/openai: hosted Whisper via the OpenAI API
//
// # Usage
//
//	mgr := transcription.NewManager()
//	mgr.Register(whisper.ProviderName, whisper.Factory())
//	result, err := p.Transcribe(ctx, req)
package transcription
