package session

import "errors"

var (
	// ErrNoSession is returned by mutating profile operations when no user
	// is logged in.
	ErrNoSession = errors.New("no active session")

	// ErrPersistence wraps a session store read/write failure.
	ErrPersistence = errors.New("session persistence failure")

	// ErrAuthRejected is reserved for a real credential check at the
	// gateway boundary. The mock gateway never returns it.
	ErrAuthRejected = errors.New("authentication rejected")
)
