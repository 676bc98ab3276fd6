package version

import (
	"strings"
	"testing"
)

func stamp(t *testing.T, version, commit, branch, date string) {
	t.Helper()
	origVersion, origCommit, origBranch, origDate := Version, Commit, Branch, Date
	t.Cleanup(func() {
		Version, Commit, Branch, Date = origVersion, origCommit, origBranch, origDate
	})
	Version, Commit, Branch, Date = version, commit, branch, date
}

func TestBuild_Defaults(t *testing.T) {
	stamp(t, "dev", "", "", "")

	b := Build()
	if b.Version != "dev" {
		t.Errorf("expected version dev, got %q", b.Version)
	}
	if b.Release {
		t.Error("dev must not be a release")
	}
	if b.BuiltAt.IsZero() {
		t.Error("expected a non-zero build time fallback")
	}
}

func TestBuild_StampedValues(t *testing.T) {
	stamp(t, "1.2.0", "abc1234", "main", "2026-03-01T12:00:00Z")

	b := Build()
	if !b.Release {
		t.Error("1.2.0 should be a release")
	}
	if b.Commit != "abc1234" {
		t.Errorf("expected stamped commit, got %q", b.Commit)
	}
	if b.BuiltAt.Year() != 2026 {
		t.Errorf("expected stamped build year, got %d", b.BuiltAt.Year())
	}
}

func TestBuild_DirtyVersionIsNotRelease(t *testing.T) {
	stamp(t, "1.2.0-dirty", "", "", "")

	if Build().Release {
		t.Error("dirty version must not be a release")
	}
}

func TestShort(t *testing.T) {
	stamp(t, "1.2.0", "abc1234", "", "2026-03-01T12:00:00Z")

	if got := Short(); got != "1.2.0-abc1234" {
		t.Errorf("expected 1.2.0-abc1234, got %q", got)
	}
}

func TestString_OmitsMainlineBranch(t *testing.T) {
	stamp(t, "1.2.0", "abc1234", "main", "2026-03-01T12:00:00Z")

	s := String()
	if strings.Contains(s, "main") {
		t.Errorf("main branch must not appear, got %q", s)
	}
	if !strings.Contains(s, "built") {
		t.Errorf("expected build date in version line, got %q", s)
	}
}

func TestString_IncludesFeatureBranch(t *testing.T) {
	stamp(t, "1.2.0", "abc1234", "feature/silence-split", "2026-03-01T12:00:00Z")

	if s := String(); !strings.Contains(s, "feature/silence-split") {
		t.Errorf("expected feature branch in version line, got %q", s)
	}
}
