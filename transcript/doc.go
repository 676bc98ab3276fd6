// Package transcript holds the speaker-labeled transcript model and its two
// output encodings: SRT subtitle cues and a JSON segment array.
package transcript
