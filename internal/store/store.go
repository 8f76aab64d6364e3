// Package store persists assessment sessions and their results. Two backends
// are provided: a directory-per-key file store and a Redis store. Results
// outlive sessions in both backends so a finished assessment can always be
// looked up again by access key.
package store

import (
	"context"
	"errors"

	"github.com/qihang-dev/qihang/internal/assessment"
)

// ErrNotFound is returned when no session exists for the given identifier.
var ErrNotFound = errors.New("session not found")

// Store persists sessions. Save overwrites the session record atomically and,
// when the session is completed, also writes the result to durable storage.
type Store interface {
	Save(ctx context.Context, session *assessment.Session) error
	// FindByID loads a live session by session id.
	FindByID(ctx context.Context, sessionID string) (*assessment.Session, error)
	// FindByKey loads the session for an access key. If only a durable result
	// survives, it returns a synthesized completed session carrying it.
	FindByKey(ctx context.Context, key string) (*assessment.Session, error)
	Close() error
}
