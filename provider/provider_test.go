package provider

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeProvider struct {
	name      string
	available bool
}

func (f *fakeProvider) Name() string { return f.name }
func (f *fakeProvider) IsAvailable(_ context.Context) bool { return f.available }

func TestRegistry_CreateAndGet(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	reg.RegisterFactory("fake", func(cfg map[string]any) (*fakeProvider, error) {
		return &fakeProvider{name: "fake", available: true}, nil
	})

	p, err := reg.Create("fake", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "fake" {
		t.Errorf("expected name 'fake', got %q", p.Name())
	}

	reg.Set("fake", p)
	cached, ok := reg.Get("fake")
	if !ok || cached != p {
		t.Error("expected cached instance")
	}
}

func TestRegistry_Create_Unregistered(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	reg.RegisterFactory("whisper", func(cfg map[string]any) (*fakeProvider, error) {
		return &fakeProvider{name: "whisper"}, nil
	})

	_, err := reg.Create("missing", nil)
	if err == nil {
		t.Fatal("expected error for unregistered factory")
	}
	if !strings.Contains(err.Error(), "whisper") {
		t.Errorf("expected error to list registered factories, got %q", err)
	}
}

func TestRegistry_List_Sorted(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	factory := func(cfg map[string]any) (*fakeProvider, error) { return &fakeProvider{}, nil }
	reg.RegisterFactory("pyannote", factory)
	reg.RegisterFactory("silence", factory)
	reg.RegisterFactory("aws", factory)

	names := reg.List()
	want := []string{"aws", "pyannote", "silence"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %q at %d, got %q", want[i], i, names[i])
		}
	}
}

func TestManager_InitializeAndGetByName(t *testing.T) {
	mgr := NewManager(NewRegistry[*fakeProvider](), &HealthCheckSelector[*fakeProvider]{})
	mgr.Register("fake", func(cfg map[string]any) (*fakeProvider, error) {
		return &fakeProvider{name: "fake", available: true}, nil
	})
	if err := mgr.Initialize("fake", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := mgr.GetByName("fake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "fake" {
		t.Errorf("expected 'fake', got %q", p.Name())
	}

	if _, err := mgr.GetByName("other"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestManager_Initialize_FactoryError(t *testing.T) {
	mgr := NewManager(NewRegistry[*fakeProvider](), &HealthCheckSelector[*fakeProvider]{})
	mgr.Register("broken", func(cfg map[string]any) (*fakeProvider, error) {
		return nil, fmt.Errorf("bad config")
	})
	if err := mgr.Initialize("broken", nil); err == nil {
		t.Fatal("expected factory error to propagate")
	}
}

func TestManager_Get_Default(t *testing.T) {
	mgr := NewManager(NewRegistry[*fakeProvider](), &HealthCheckSelector[*fakeProvider]{})
	mgr.Register("a", func(cfg map[string]any) (*fakeProvider, error) {
		return &fakeProvider{name: "a", available: false}, nil
	})
	mgr.Register("b", func(cfg map[string]any) (*fakeProvider, error) {
		return &fakeProvider{name: "b", available: true}, nil
	})
	if err := mgr.Initialize("a", nil); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Initialize("b", nil); err != nil {
		t.Fatal(err)
	}

	// Selector path: only "b" is available.
	p, err := mgr.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "b" {
		t.Errorf("expected selector to pick 'b', got %q", p.Name())
	}

	// Default overrides the selector even when unavailable.
	mgr.SetDefault("a")
	p, err = mgr.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "a" {
		t.Errorf("expected default 'a', got %q", p.Name())
	}
}

func TestPrioritySelector(t *testing.T) {
	providers := map[string]*fakeProvider{
		"first":  {name: "first", available: false},
		"second": {name: "second", available: true},
	}
	sel := &PrioritySelector[*fakeProvider]{Priority: []string{"first", "second"}}
	p, err := sel.Select(context.Background(), providers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "second" {
		t.Errorf("expected 'second', got %q", p.Name())
	}

	sel = &PrioritySelector[*fakeProvider]{Priority: []string{"missing"}}
	if _, err := sel.Select(context.Background(), providers); err == nil {
		t.Error("expected error when nothing in priority list is available")
	}
}

func TestStatus_String(t *testing.T) {
	if StatusHealthy.String() != "healthy" {
		t.Error("unexpected string for StatusHealthy")
	}
	if StatusDegraded.String() != "degraded" {
		t.Error("unexpected string for StatusDegraded")
	}
	if StatusUnavailable.String() != "unavailable" {
		t.Error("unexpected string for StatusUnavailable")
	}
	if Status(99).String() != "unknown" {
		t.Error("unexpected string for out-of-range status")
	}
}
