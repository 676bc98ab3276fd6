// Package pipeline orchestrates the speaker-labeled transcription flow:
// probe the audio duration, diarize into speaker turns, slice the waveform
// per turn, transcribe each slice, and assemble an ordered transcript.
//
// Execution is synchronous and sequential; progress is reported through an
// optional callback after each completed turn.
package pipeline
