package event

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Topic is a hierarchical event type (e.g. "history.snapshot.created").
type Topic string

// Engine event topics.
const (
	// TopicStateChanged is published when a mutation replaces the document value.
	TopicStateChanged Topic = "document.state.changed"

	// TopicStateRestored is published when a snapshot is restored into the document.
	TopicStateRestored Topic = "document.state.restored"

	// TopicSnapshotCreated is published when a backup stores a new snapshot.
	TopicSnapshotCreated Topic = "history.snapshot.created"

	// TopicSnapshotRestored is published when an undo consumes a snapshot.
	TopicSnapshotRestored Topic = "history.snapshot.restored"

	// TopicUndoEmpty is published when undo is requested on empty history.
	TopicUndoEmpty Topic = "history.undo.empty"
)

// Event represents a single engine event.
// Events are immutable once created.
type Event struct {
	// Topic identifies what happened.
	Topic Topic

	// Payload contains the topic-specific data (one of the structs below).
	Payload any

	// Metadata contains standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the component that published the event.
	Source string
}

// StateChanged is the payload for document.state.changed and
// document.state.restored.
type StateChanged struct {
	// Old is the value before the change.
	Old string

	// New is the value after the change.
	New string
}

// SnapshotCreated is the payload for history.snapshot.created.
type SnapshotCreated struct {
	// Summary is the snapshot's display form.
	Summary string

	// HistoryLen is the number of stored snapshots after the backup.
	HistoryLen int
}

// SnapshotRestored is the payload for history.snapshot.restored.
type SnapshotRestored struct {
	// Summary is the display form of the consumed snapshot.
	Summary string

	// HistoryLen is the number of stored snapshots after the undo.
	HistoryLen int
}

// UndoEmpty is the payload for history.undo.empty.
type UndoEmpty struct{}

// New creates an event with generated metadata.
func New(topic Topic, payload any, source string) Event {
	return Event{
		Topic:   topic,
		Payload: payload,
		Metadata: Metadata{
			ID:        generateID(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// generateID generates a unique event ID.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// Fallback to timestamp-based ID if crypto/rand fails
		return fmt.Sprintf("evt-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
