// Package util provides small shared helpers: size-string parsing,
// secret masking for logs, and input sanitization.
package util
