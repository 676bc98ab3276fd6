package sse

// Broadcaster is the publishing side of the hub. Handlers and the job
// manager depend on this abstraction rather than a concrete Hub.
type Broadcaster interface {
	// BroadcastToPattern sends data to all clients whose ID matches the
	// glob pattern (e.g. "job:abc123:*").
	BroadcastToPattern(pattern string, data []byte)
}
