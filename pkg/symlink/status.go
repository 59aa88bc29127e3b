package symlink

import (
	"github.com/arthur-debert/home-symlink/pkg/errors"
)

// State is the kind of a Status
type State int

const (
	StateUnlinked State = iota
	StateLinked
	StateError
)

// String returns the lowercase name of the state
func (s State) String() string {
	switch s {
	case StateUnlinked:
		return "unlinked"
	case StateLinked:
		return "linked"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the live state of a symlink. Reason is only set for
// StateError. Two statuses are equal, and aggregate together, only when
// both the state and the reason match.
type Status struct {
	State  State
	Reason string
}

// Unlinked returns the status of a symlink that does not exist yet
func Unlinked() Status {
	return Status{State: StateUnlinked}
}

// Linked returns the status of a symlink pointing at its source
func Linked() Status {
	return Status{State: StateLinked}
}

// Errored returns an error status with the given reason
func Errored(reason string) Status {
	return Status{State: StateError, Reason: reason}
}

// StatusFromError collapses any error into an error status. A nil error
// yields Unlinked.
func StatusFromError(err error) Status {
	if err == nil {
		return Unlinked()
	}
	return Errored(errors.Reason(err))
}

func (s Status) IsLinked() bool   { return s.State == StateLinked }
func (s Status) IsUnlinked() bool { return s.State == StateUnlinked }
func (s Status) IsError() bool    { return s.State == StateError }

// String renders the status label shown in reports
func (s Status) String() string {
	switch s.State {
	case StateLinked:
		return "(✓) Linked"
	case StateUnlinked:
		return "(X) Unlinked"
	default:
		return "(X) Error: " + s.Reason
	}
}
