// Package media handles audio preparation: extracting a mono 16 kHz WAV
// track with ffmpeg, slicing per-turn windows for transcription, and probing
// WAV durations for progress estimation.
package media
