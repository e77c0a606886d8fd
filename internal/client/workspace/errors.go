package workspace

import "errors"

var (
	// ErrNotAuthenticated is returned before any request when there is no
	// session credential.
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrNotPermitted is returned when the role or the active scope does not
	// allow the action. Nothing is sent.
	ErrNotPermitted = errors.New("not permitted here")
	// ErrNoActiveNote is returned by review actions without an open note.
	ErrNoActiveNote = errors.New("no report selected")
	// ErrNotInScope means the id is not part of the active list.
	ErrNotInScope = errors.New("not in the current list")
	// ErrSuperseded reports that a response arrived after a newer action
	// changed the scope or the active note. The response was dropped.
	ErrSuperseded = errors.New("response superseded by a newer action")
)
