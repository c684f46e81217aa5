package history

import (
	"errors"
	"iter"
	"sync"
	"time"

	"github.com/dshills/snapback/internal/engine/snapshot"
	"github.com/dshills/snapback/internal/engine/state"
	"github.com/dshills/snapback/internal/event"
)

// ErrNothingToUndo is returned by Undo when the history is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// entry wraps a stored snapshot with keeper metadata.
type entry struct {
	snap    snapshot.Snapshot
	takenAt time.Time
}

// EntryInfo provides read-only info about a stored snapshot.
// Used for displaying history to users.
type EntryInfo struct {
	Summary string    // Snapshot display form
	TakenAt time.Time // When the backup was taken
}

// Keeper owns the ordered snapshot history for one document.
// Entries are appended by Backup and consumed newest-first by Undo.
type Keeper struct {
	mu sync.Mutex

	doc     *state.Document
	events  *event.Dispatcher
	entries []*entry
}

// NewKeeper creates a keeper bound to doc. The dispatcher may be nil.
func NewKeeper(doc *state.Document, events *event.Dispatcher) *Keeper {
	return &Keeper{
		doc:    doc,
		events: events,
	}
}

// Backup captures the document's current value and appends it to history.
// Identical consecutive backups are kept as distinct entries.
func (k *Keeper) Backup() {
	snap := k.doc.Snapshot()

	k.mu.Lock()
	k.entries = append(k.entries, &entry{snap: snap, takenAt: time.Now()})
	n := len(k.entries)
	k.mu.Unlock()

	k.events.Publish(event.TopicSnapshotCreated, event.SnapshotCreated{
		Summary:    snap.Summary(),
		HistoryLen: n,
	}, "history")
}

// Undo removes the newest snapshot and restores the document to it. The
// snapshot is consumed; there is no redo. On empty history it publishes
// history.undo.empty and returns ErrNothingToUndo with no state change.
// If the restore itself fails the entry is put back and the error returned.
func (k *Keeper) Undo() error {
	k.mu.Lock()
	if len(k.entries) == 0 {
		k.mu.Unlock()
		k.events.Publish(event.TopicUndoEmpty, event.UndoEmpty{}, "history")
		return ErrNothingToUndo
	}
	e := k.entries[len(k.entries)-1]
	k.entries = k.entries[:len(k.entries)-1]
	n := len(k.entries)
	k.mu.Unlock()

	if err := k.doc.Restore(e.snap); err != nil {
		// Restore entry on failure
		k.mu.Lock()
		k.entries = append(k.entries, e)
		k.mu.Unlock()
		return err
	}

	k.events.Publish(event.TopicSnapshotRestored, event.SnapshotRestored{
		Summary:    e.snap.Summary(),
		HistoryLen: n,
	}, "history")
	return nil
}

// CanUndo returns true if at least one snapshot is stored.
func (k *Keeper) CanUndo() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries) > 0
}

// Len returns the number of stored snapshots.
func (k *Keeper) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

// Entries returns a lazy iterator over stored snapshots in insertion order.
// The sequence is restartable and reflects the history as of the call; it
// does not mutate the keeper.
func (k *Keeper) Entries() iter.Seq[snapshot.Snapshot] {
	k.mu.Lock()
	snaps := make([]snapshot.Snapshot, len(k.entries))
	for i, e := range k.entries {
		snaps[i] = e.snap
	}
	k.mu.Unlock()

	return func(yield func(snapshot.Snapshot) bool) {
		for _, s := range snaps {
			if !yield(s) {
				return
			}
		}
	}
}

// Infos returns display records for all stored snapshots in insertion order.
func (k *Keeper) Infos() []EntryInfo {
	k.mu.Lock()
	defer k.mu.Unlock()

	result := make([]EntryInfo, len(k.entries))
	for i, e := range k.entries {
		result[i] = EntryInfo{
			Summary: e.snap.Summary(),
			TakenAt: e.takenAt,
		}
	}
	return result
}
