package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// summaryLen bounds how much of the payload a Summary leaks to display code.
const summaryLen = 9

// capture is the concrete snapshot produced by a Document. It is unexported
// so the payload is readable only inside this package: generic holders see
// the snapshot.Snapshot interface and nothing more. The owner field ties
// the capture to the document that produced it; Restore rejects captures
// from any other document.
// Immutable once created.
type capture struct {
	owner     uuid.UUID
	value     string
	createdAt time.Time
}

func newCapture(owner uuid.UUID, value string) *capture {
	return &capture{
		owner:     owner,
		value:     value,
		createdAt: time.Now(),
	}
}

// CreatedAt returns when the snapshot was taken.
func (c *capture) CreatedAt() time.Time {
	return c.createdAt
}

// Summary returns the display form used in history listings: the capture
// time plus a truncated view of the payload.
func (c *capture) Summary() string {
	v := c.value
	if len(v) > summaryLen {
		v = v[:summaryLen] + "..."
	}
	return fmt.Sprintf("%s / (%s)", c.createdAt.Format("2006-01-02 15:04:05"), v)
}
