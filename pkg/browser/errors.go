package browser

import (
	"context"
	"errors"
)

var (
	// ErrElementNotFound is returned when a locator matches nothing within
	// the driver's timeout.
	ErrElementNotFound = errors.New("element not found")

	// ErrWaitTimeout is returned when an explicit wait condition does not
	// become true before its deadline.
	ErrWaitTimeout = errors.New("wait condition timed out")
)

// Presence is the answer of a visibility check. It deliberately separates
// "the element is not there" from "the check itself failed", so unrelated
// failures are never silently reported as absence.
type Presence int

const (
	// Absent means the element was not present and visible within the
	// timeout window.
	Absent Presence = iota
	// Visible means the element was present and visible.
	Visible
)

func (p Presence) String() string {
	if p == Visible {
		return "visible"
	}
	return "absent"
}

// isDeadline reports whether err is a timeout from the underlying driver.
// Rod surfaces expired waits as wrapped context deadline errors.
func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// isAbsence reports whether err only means the element was not there, as
// opposed to the check itself failing.
func isAbsence(err error) bool {
	return errors.Is(err, ErrWaitTimeout) || errors.Is(err, ErrElementNotFound)
}
