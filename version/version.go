package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Stamped at build time via -ldflags.
var (
	Version = "dev"
	Commit  = ""
	Branch  = ""
	Date    = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit"`
	Branch    string    `json:"branch"`
	GoVersion string    `json:"go_version"`
	BuiltAt   time.Time `json:"built_at"`
	Release   bool      `json:"release"`
	Dirty     bool      `json:"dirty"`
}

// Build assembles the binary's build metadata, preferring ldflags-stamped
// values and falling back to the toolchain's embedded VCS settings.
func Build() BuildInfo {
	b := BuildInfo{
		Version: Version,
		Commit:  Commit,
		Branch:  Branch,
		Release: Version != "dev" && !strings.Contains(Version, "dirty"),
	}
	if Date != "" {
		if t, err := time.Parse(time.RFC3339, Date); err == nil {
			b.BuiltAt = t
		}
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		b.GoVersion = info.GoVersion
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if b.Commit == "" {
					b.Commit = shortCommit(setting.Value)
				}
			case "vcs.modified":
				b.Dirty = setting.Value == "true"
			case "vcs.time":
				if b.BuiltAt.IsZero() {
					if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
						b.BuiltAt = t
					}
				}
			}
		}
	}

	if b.BuiltAt.IsZero() {
		b.BuiltAt = time.Now().UTC()
	}
	return b
}

// Short returns "version-commit", with a -dirty suffix for modified trees.
func Short() string {
	b := Build()
	if b.Commit == "" {
		return b.Version
	}
	if b.Dirty {
		return fmt.Sprintf("%s-%s-dirty", b.Version, b.Commit)
	}
	return fmt.Sprintf("%s-%s", b.Version, b.Commit)
}

// String returns a human-readable version line for the CLI. Mainline
// branches are omitted; feature branches are included.
func String() string {
	b := Build()
	parts := []string{b.Version}
	if b.Commit != "" {
		parts = append(parts, b.Commit)
	}
	if b.Branch != "" && b.Branch != "main" && b.Branch != "master" {
		parts = append(parts, b.Branch)
	}
	if b.Dirty {
		parts = append(parts, "dirty")
	}
	s := strings.Join(parts, "-")
	if !b.BuiltAt.IsZero() {
		s += fmt.Sprintf(" (built %s)", b.BuiltAt.Format("2006-01-02T15:04:05Z"))
	}
	return s
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
