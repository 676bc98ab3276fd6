// Package validation wraps go-playground/validator with scribekit's error
// types. Struct configs are validated via `validate:"..."` tags; failures
// surface as a single AppError with per-field details.
package validation
