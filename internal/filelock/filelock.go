// Package filelock guards a normalization run so two invocations cannot
// interleave renames on the same tree. The per-file check-then-rename race
// against arbitrary external processes remains; this only serializes filenorm
// against itself.
package filelock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// RunLock is an advisory lock scoped to one root path.
type RunLock struct {
	flock *flock.Flock
	path  string
}

// ForRoot builds the lock for a resolved root path. The lock file lives in
// the system temp directory, keyed by a hash of the path so every invocation
// on the same tree contends for the same file.
func ForRoot(root string) *RunLock {
	sum := sha256.Sum256([]byte(root))
	name := fmt.Sprintf("filenorm-%s.lock", hex.EncodeToString(sum[:8]))
	path := filepath.Join(os.TempDir(), name)
	return &RunLock{
		flock: flock.New(path),
		path:  path,
	}
}

// TryLock attempts to take the lock without blocking. It returns false when
// another run already holds it.
func (l *RunLock) TryLock() (bool, error) {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (l *RunLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// Path returns the lock file location, mainly for diagnostics.
func (l *RunLock) Path() string {
	return l.path
}
