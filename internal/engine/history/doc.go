// Package history provides the snapshot history keeper for a document.
//
// A Keeper is bound to exactly one state.Document. It pulls opaque
// snapshots from the document and stores them in an ordered list that
// behaves as a stack:
//
//	keeper := history.NewKeeper(doc, dispatcher)
//
//	keeper.Backup() // capture and append the current value
//	keeper.Undo()   // pop the newest snapshot and restore it
//
// Undo consumes its snapshot: there is no redo or forward history. Undo on
// an empty keeper reports ErrNothingToUndo and leaves the document
// untouched; it is the only error condition the keeper surfaces in normal
// use.
//
// Backups are stored exactly as taken. Two backups with no mutation in
// between yield two identical entries; the keeper never deduplicates.
//
// # Inspection
//
// Entries returns a lazy, restartable iterator over stored snapshots in
// insertion order. Infos returns a copied slice of display records, for
// callers that want a materialized listing.
package history
