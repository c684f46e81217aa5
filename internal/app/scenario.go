package app

import (
	"errors"

	"github.com/dshills/snapback/internal/engine/history"
)

// RunScenario executes the fixed demonstration script: mutate and back up
// the document a few times (including a duplicate backup with no mutation
// in between), list the history, then undo until the history is drained
// and twice more past it. Empty-history undos are expected and reported
// through the event log; any other error aborts the script.
func (a *App) RunScenario() error {
	a.doc.Mutate()
	a.keeper.Backup()

	a.doc.Mutate()
	a.keeper.Backup()
	a.keeper.Backup()

	a.ShowHistory()

	for range 5 {
		if err := a.keeper.Undo(); err != nil {
			if errors.Is(err, history.ErrNothingToUndo) {
				continue
			}
			return err
		}
	}

	return nil
}
