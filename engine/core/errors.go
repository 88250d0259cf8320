package core

import (
	"errors"
)

var (
	ErrQueryRunning      = errors.New("query is already running")
	ErrQueryNotRunning   = errors.New("query is not running")
	ErrQueryNotEnded     = errors.New("query has not been ended")
	ErrResultNotReady    = errors.New("query result is not available yet")
	ErrObjectReleased    = errors.New("object was released or never created")
	ErrFeedbackActive    = errors.New("transform feedback is already active")
	ErrFeedbackInactive  = errors.New("transform feedback is not active")
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrUnknownBackend    = errors.New("unknown renderer backend")
	ErrNoContext         = errors.New("no graphics context available")
	ErrUnknown           = errors.New("unknown")
)
