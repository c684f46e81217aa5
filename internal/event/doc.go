// Package event provides change-notification events for the snapshot engine.
//
// The engine never prints. Every observable action publishes a typed event
// through a Dispatcher, and presentation code (the cmd binary, or a test
// recorder) decides what to do with it. This keeps the state machine fully
// testable without capturing console output.
//
// # Topics
//
// Topics are hierarchical dotted strings identifying what happened:
//
//	document.state.changed     a mutation replaced the document value
//	document.state.restored    a snapshot was restored into the document
//	history.snapshot.created   a backup appended a snapshot to history
//	history.snapshot.restored  an undo consumed a snapshot
//	history.undo.empty         undo was requested with no history
//
// # Delivery
//
// Dispatch is synchronous and in registration order. Publish returns after
// every handler has run. A nil *Dispatcher is valid and drops all events,
// so engine types never need to guard their publish calls.
package event
