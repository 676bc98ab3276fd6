package provider

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Selector picks one provider out of the initialized set. Selection runs on
// every Get, so an unreachable sidecar is skipped as soon as its
// IsAvailable probe fails.
type Selector[T Provider] interface {
	Select(ctx context.Context, providers map[string]T) (T, error)
}

// PrioritySelector walks a fixed preference order, e.g. the local whisper
// sidecar before the hosted API, and picks the first available provider.
type PrioritySelector[T Provider] struct {
	// Priority is the ordered list of provider names to try.
	Priority []string
}

// Select returns the first available provider in priority order.
func (s *PrioritySelector[T]) Select(ctx context.Context, providers map[string]T) (T, error) {
	for _, name := range s.Priority {
		if p, ok := providers[name]; ok && p.IsAvailable(ctx) {
			return p, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("no available provider in priority list [%s]",
		strings.Join(s.Priority, ", "))
}

// HealthCheckSelector has no preference order: it probes the providers in
// name order and picks the first that answers.
type HealthCheckSelector[T Provider] struct{}

// Select returns the first provider, by sorted name, that reports available.
func (s *HealthCheckSelector[T]) Select(ctx context.Context, providers map[string]T) (T, error) {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if p := providers[name]; p.IsAvailable(ctx) {
			return p, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("no provider reported available")
}
