package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/qihang-dev/qihang/internal/assessment"
)

const (
	sessionFileName = "session.json"
	resultFileName  = "result.json"
)

// FileStore keeps one directory per access key under a base directory, with
// session.json for the live session and result.json written once the
// assessment completes. result.json is never deleted by session overwrites,
// so completed results survive a restarted assessment.
type FileStore struct {
	baseDir string
	mu      sync.RWMutex
	closed  bool
}

// NewFileStore creates the base directory if needed and returns a file store.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		baseDir = "data"
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create base dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// validatePathComponent rejects identifiers that could escape the base dir.
func validatePathComponent(s string) error {
	if s == "" {
		return errors.New("empty identifier")
	}
	if strings.ContainsAny(s, `/\`) || strings.Contains(s, "..") {
		return fmt.Errorf("invalid identifier %q", s)
	}
	return nil
}

func (f *FileStore) keyDir(key string) string {
	return filepath.Join(f.baseDir, key)
}

// Save writes session.json and, for completed sessions, result.json.
func (f *FileStore) Save(_ context.Context, session *assessment.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return errors.New("store closed")
	}
	if err := validatePathComponent(session.Key); err != nil {
		return err
	}

	dir := f.keyDir(session.Key)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, sessionFileName), session); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if session.Completed && session.Result != nil {
		if err := writeJSON(filepath.Join(dir, resultFileName), session.Result); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}

// FindByID loads session.json for the given session id. Session ids equal
// access keys, so the lookup is a directory read.
func (f *FileStore) FindByID(_ context.Context, sessionID string) (*assessment.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return nil, errors.New("store closed")
	}
	if err := validatePathComponent(sessionID); err != nil {
		return nil, err
	}
	return f.readSession(sessionID)
}

// FindByKey prefers the durable result. When result.json exists, the
// returned session is completed and carries it even if session.json has been
// replaced by a newer in-progress run.
func (f *FileStore) FindByKey(_ context.Context, key string) (*assessment.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return nil, errors.New("store closed")
	}
	if err := validatePathComponent(key); err != nil {
		return nil, err
	}

	resultPath := filepath.Join(f.keyDir(key), resultFileName)
	if data, err := os.ReadFile(resultPath); err == nil {
		var result assessment.Result
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		session, err := f.readSession(key)
		if err != nil {
			// Session record gone; synthesize a completed one around the result.
			session = &assessment.Session{SessionID: key, Key: key}
		}
		session.Completed = true
		session.Result = &result
		return session, nil
	}

	return f.readSession(key)
}

func (f *FileStore) readSession(key string) (*assessment.Session, error) {
	data, err := os.ReadFile(filepath.Join(f.keyDir(key), sessionFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var session assessment.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// Close marks the store closed. Subsequent operations fail.
func (f *FileStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// writeJSON writes v atomically via a temp file rename.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
