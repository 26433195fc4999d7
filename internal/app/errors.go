package app

import "errors"

// ErrNotSignedIn is returned when a save is attempted without a resolved
// identity. The remote call is never made.
var ErrNotSignedIn = errors.New("not signed in")

// ValidationError reports a required field that is empty after trimming.
// It is raised before any remote call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
