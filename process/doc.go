// Package process executes external tools (primarily ffmpeg) with captured
// output, process-group cleanup, and graceful SIGTERM-then-SIGKILL
// termination on context cancellation.
package process
