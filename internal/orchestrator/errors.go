package orchestrator

import (
	"errors"
	"fmt"
)

// ErrNoUsableFormats marks a profile whose response was playable but
// carried no format with a direct URL.
var ErrNoUsableFormats = errors.New("no usable formats")

// AttemptError captures one profile attempt failure.
type AttemptError struct {
	Client string
	Err    error
}

// AllClientsFailedError is returned when no profile yielded usable formats.
type AllClientsFailedError struct {
	Attempts []AttemptError
}

func (e *AllClientsFailedError) Error() string {
	if len(e.Attempts) == 0 {
		return "all clients failed"
	}
	return fmt.Sprintf("all clients failed: %d attempt(s)", len(e.Attempts))
}

// PlayabilityError indicates the platform refused playback for a response.
type PlayabilityError struct {
	Client string
	Status string
	Reason string
}

func (e *PlayabilityError) Error() string {
	return fmt.Sprintf("unplayable status=%s client=%s reason=%s", e.Status, e.Client, e.Reason)
}

func (e *PlayabilityError) RequiresLogin() bool {
	return e.Status == "LOGIN_REQUIRED"
}

func (e *PlayabilityError) IsUnavailable() bool {
	return e.Status == "UNPLAYABLE"
}
