package app

import (
	"fmt"

	"github.com/dshills/snapback/internal/event"
)

// render writes one human-readable line per engine event. The format is
// display-only and not a stable machine interface.
func (a *App) render(ev event.Event) {
	switch p := ev.Payload.(type) {
	case event.StateChanged:
		switch ev.Topic {
		case event.TopicStateChanged:
			fmt.Fprintf(a.out, "document: state changed: %s -> %s\n", p.Old, p.New)
		case event.TopicStateRestored:
			fmt.Fprintf(a.out, "document: state restored: %s -> %s\n", p.Old, p.New)
		}
	case event.SnapshotCreated:
		fmt.Fprintf(a.out, "history: saved snapshot %s (%d stored)\n", p.Summary, p.HistoryLen)
	case event.SnapshotRestored:
		fmt.Fprintf(a.out, "history: undo consumed snapshot %s (%d stored)\n", p.Summary, p.HistoryLen)
	case event.UndoEmpty:
		fmt.Fprintln(a.out, "history: nothing to undo")
	}
}

// ShowHistory prints every stored snapshot in insertion order.
func (a *App) ShowHistory() {
	fmt.Fprintf(a.out, "history: %d stored snapshots\n", a.keeper.Len())
	for snap := range a.keeper.Entries() {
		fmt.Fprintf(a.out, "  - %s\n", snap.Summary())
	}
}
