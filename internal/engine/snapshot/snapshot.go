// Package snapshot defines the generic capability exposed by document
// snapshots.
//
// A Snapshot is deliberately narrow: generic holders (the history keeper,
// display code) can read when it was taken and a short display form, and
// nothing else. The captured payload lives behind an unexported concrete
// type inside the state package, so only the document that produced a
// snapshot can open it again. Anything else implementing this interface is
// a foreign snapshot and is rejected by Document.Restore.
package snapshot

import "time"

// Snapshot is a point-in-time capture of a document value.
// Implementations are immutable once created.
type Snapshot interface {
	// CreatedAt returns when the snapshot was taken.
	CreatedAt() time.Time

	// Summary returns a short human-readable form for history listings,
	// showing at most a truncated prefix of the payload.
	Summary() string
}
