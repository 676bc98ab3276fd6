package util

import (
	"fmt"
	"strings"
)

var sizeSuffixes = []struct {
	suffix     string
	multiplier int64
}{
	{"GB", 1024 * 1024 * 1024},
	{"MB", 1024 * 1024},
	{"KB", 1024},
}

// ParseSize converts a human-readable size like "500MB" or "512KB" into
// bytes. A bare number is taken as bytes. Unparseable input falls back to
// defaultBytes, so a bad upload-limit setting degrades instead of failing.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes
	}

	var multiplier int64 = 1
	for _, candidate := range sizeSuffixes {
		if strings.HasSuffix(s, candidate.suffix) {
			multiplier = candidate.multiplier
			s = strings.TrimSuffix(s, candidate.suffix)
			break
		}
	}

	var val int64
	if _, err := fmt.Sscanf(s, "%d", &val); err == nil {
		return val * multiplier
	}
	return defaultBytes
}

// MaskSecret truncates a sensitive value, such as an API key, to a short
// visible prefix for logging. Values at or below the prefix length are
// masked entirely.
func MaskSecret(s string, visiblePrefix int) string {
	if len(s) <= visiblePrefix {
		return "***"
	}
	return s[:visiblePrefix] + "***"
}
