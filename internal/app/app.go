// Package app wires the snapshot engine together: one document, one
// history keeper bound to it, and a console renderer subscribed to the
// engine's events. It also carries the fixed demonstration scenario the
// cmd binary runs.
package app

import (
	"io"
	"os"

	"github.com/dshills/snapback/internal/engine/history"
	"github.com/dshills/snapback/internal/engine/state"
	"github.com/dshills/snapback/internal/event"
)

// App is the assembled snapshot engine.
type App struct {
	doc    *state.Document
	keeper *history.Keeper
	events *event.Dispatcher
	out    io.Writer
}

// Options configures the application.
type Options struct {
	// InitialState is the document's starting value.
	// Empty means state.DefaultValue.
	InitialState string

	// Out receives the human-readable event log. Nil means os.Stdout.
	Out io.Writer
}

// New builds one document and one keeper bound to it, with a console
// renderer listening on the shared dispatcher.
func New(opts Options) *App {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	a := &App{
		events: event.NewDispatcher(),
		out:    opts.Out,
	}
	a.events.Subscribe(a.render)

	a.doc = state.NewDocument(opts.InitialState, a.events)
	a.keeper = history.NewKeeper(a.doc, a.events)

	return a
}

// Document returns the application's document.
func (a *App) Document() *state.Document {
	return a.doc
}

// History returns the keeper bound to the document.
func (a *App) History() *history.Keeper {
	return a.keeper
}
