// Package errors implements the structured AppError type used across
// scribekit: machine-readable codes, HTTP status mapping, retryable
// detection, and constructors for the speech-processing failure modes
// (missing model checkpoints, backend failures, undecodable audio).
package errors
