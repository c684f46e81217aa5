package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/snapback/internal/engine/state"
)

func TestNewDefaults(t *testing.T) {
	var buf bytes.Buffer
	a := New(Options{Out: &buf})

	if a.Document() == nil {
		t.Fatal("Document() is nil")
	}
	if a.History() == nil {
		t.Fatal("History() is nil")
	}
	if got := a.Document().Value(); got != state.DefaultValue {
		t.Errorf("initial value = %q, want %q", got, state.DefaultValue)
	}
}

func TestNewInitialState(t *testing.T) {
	var buf bytes.Buffer
	a := New(Options{InitialState: "seeded", Out: &buf})

	if got := a.Document().Value(); got != "seeded" {
		t.Errorf("initial value = %q, want %q", got, "seeded")
	}
}

func TestBackupUndoThroughApp(t *testing.T) {
	var buf bytes.Buffer
	a := New(Options{Out: &buf})

	before := a.Document().Value()
	a.History().Backup()
	a.Document().Mutate()

	if err := a.History().Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got := a.Document().Value(); got != before {
		t.Errorf("value = %q after undo, want %q", got, before)
	}
}

func TestRenderWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	a := New(Options{Out: &buf})

	a.Document().Mutate()   // document: state changed
	a.History().Backup()    // history: saved snapshot
	_ = a.History().Undo()  // document: state restored + history: undo consumed
	_ = a.History().Undo()  // history: nothing to undo

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}

	prefixes := []string{
		"document: state changed:",
		"history: saved snapshot",
		"document: state restored:",
		"history: undo consumed snapshot",
		"history: nothing to undo",
	}
	for i, prefix := range prefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestShowHistory(t *testing.T) {
	var buf bytes.Buffer
	a := New(Options{Out: &buf})

	a.History().Backup()
	a.Document().Mutate()
	a.History().Backup()

	buf.Reset()
	a.ShowHistory()

	out := buf.String()
	if !strings.Contains(out, "2 stored snapshots") {
		t.Errorf("output missing count header:\n%s", out)
	}
	if got := strings.Count(out, "  - "); got != 2 {
		t.Errorf("listed %d snapshots, want 2:\n%s", got, out)
	}
}

func TestRunScenario(t *testing.T) {
	var buf bytes.Buffer
	a := New(Options{Out: &buf})

	if err := a.RunScenario(); err != nil {
		t.Fatalf("RunScenario failed: %v", err)
	}

	out := buf.String()

	// Two mutations, three backups, three successful undos, two undos past
	// the end of history.
	if got := strings.Count(out, "document: state changed:"); got != 2 {
		t.Errorf("%d state-changed lines, want 2:\n%s", got, out)
	}
	if got := strings.Count(out, "history: saved snapshot"); got != 3 {
		t.Errorf("%d saved-snapshot lines, want 3:\n%s", got, out)
	}
	if got := strings.Count(out, "history: undo consumed snapshot"); got != 3 {
		t.Errorf("%d undo lines, want 3:\n%s", got, out)
	}
	if got := strings.Count(out, "history: nothing to undo"); got != 2 {
		t.Errorf("%d nothing-to-undo lines, want 2:\n%s", got, out)
	}
	if !strings.Contains(out, "3 stored snapshots") {
		t.Errorf("history listing missing:\n%s", out)
	}

	// The scenario drains the history and ends on the first mutation token.
	if a.History().Len() != 0 {
		t.Errorf("history length = %d after scenario, want 0", a.History().Len())
	}
	if got := a.Document().Value(); len(got) != 5 {
		t.Errorf("final value %q is not a 5-character token", got)
	}
}
