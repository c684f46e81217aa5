// Package state implements the document whose value is snapshotted and
// restored. The document owns exactly one mutable string value; snapshots
// of it are exported as the opaque snapshot.Snapshot capability and can be
// opened again only by this package.
package state

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dshills/snapback/internal/engine/snapshot"
	"github.com/dshills/snapback/internal/event"
)

// ErrForeignSnapshot is returned by Restore when the snapshot was not
// produced by this package's Document. The document state is unchanged.
var ErrForeignSnapshot = errors.New("snapshot was not produced by this document")

// DefaultValue is the initial document value when none is supplied.
const DefaultValue = "initial_state"

// tokenLen is the length of generated mutation tokens.
const tokenLen = 5

// Document holds a single mutable value and exports/imports snapshots of it.
// A Document always holds exactly one current value; it is never absent.
// Not safe for concurrent use.
type Document struct {
	id     uuid.UUID
	value  string
	events *event.Dispatcher
}

// NewDocument creates a document with the given initial value, or
// DefaultValue if initial is empty. The dispatcher may be nil, in which
// case change notifications are dropped.
func NewDocument(initial string, events *event.Dispatcher) *Document {
	if initial == "" {
		initial = DefaultValue
	}
	return &Document{id: uuid.New(), value: initial, events: events}
}

// Value returns the current document value.
func (d *Document) Value() string {
	return d.value
}

// Mutate replaces the current value with a fresh random token and returns
// the new value. It publishes document.state.changed with the old and new
// values. Mutate always succeeds.
func (d *Document) Mutate() string {
	old := d.value
	d.value = newToken()
	d.events.Publish(event.TopicStateChanged, event.StateChanged{Old: old, New: d.value}, "document")
	return d.value
}

// Snapshot captures the current value into a new immutable snapshot.
// It does not mutate the document.
func (d *Document) Snapshot() snapshot.Snapshot {
	return newCapture(d.id, d.value)
}

// Restore replaces the current value with the snapshot's payload and
// publishes document.state.restored. If the snapshot is not the concrete
// variant this document produces, or was produced by a different document,
// Restore returns ErrForeignSnapshot and leaves the document unchanged;
// callers must not assume restore always succeeds.
func (d *Document) Restore(s snapshot.Snapshot) error {
	c, ok := s.(*capture)
	if !ok || c.owner != d.id {
		return ErrForeignSnapshot
	}
	old := d.value
	d.value = c.value
	d.events.Publish(event.TopicStateRestored, event.StateChanged{Old: old, New: d.value}, "document")
	return nil
}

// newToken derives a short random identifier from a fresh UUID.
func newToken() string {
	return uuid.NewString()[:tokenLen]
}
