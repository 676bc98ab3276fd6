// Package version exposes the scribekit binary's build metadata.
//
// Version, commit, branch, and build date are stamped at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/skillsenselab/scribekit/version.Version=1.0.0"
//
// When a value is not stamped, the package falls back to the VCS settings
// recorded by the Go toolchain in the binary's build info.
package version
