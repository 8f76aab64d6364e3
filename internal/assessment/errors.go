package assessment

import "errors"

// Errors surfaced by the orchestration service. All are terminal for the
// current request; none are retried internally.
var (
	// ErrInvalidAccessKey is returned when the access key is not on the allow-list.
	ErrInvalidAccessKey = errors.New("invalid access key")
	// ErrSessionNotFound is returned when no session exists for the given ID.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionCompleted is returned when submitting an answer to a session
	// whose question sequence is already exhausted.
	ErrSessionCompleted = errors.New("assessment already completed")
	// ErrNotCompleted is returned when requesting the result of a session
	// that has questions remaining.
	ErrNotCompleted = errors.New("assessment not complete")
	// ErrUnsupportedProvider is returned when the requested model provider
	// is not configured. The check happens before any session write.
	ErrUnsupportedProvider = errors.New("unsupported model provider")
)
