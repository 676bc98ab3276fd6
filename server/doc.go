// Package server provides scribekit's HTTP server: a Gin engine with
// HTTP/2 h2c support, a standard middleware stack, and the built-in
// health, info, and metrics endpoints.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: Panic recovery with structured logging
//   - RequestID: Request ID generation and propagation
//   - CORS: Cross-origin resource sharing configuration
//   - BodySize: Request body size limits
//   - Logging: Request/response logging with duration tracking
//   - RateLimit: Sliding-window rate limiting
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: Health check aggregation over providers
//   - /info: Application information
//   - /metrics: Runtime memory and goroutine metrics
//   - /version: Build version information
//   - /alive, /ready: Kubernetes probes
package server
