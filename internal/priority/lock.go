package priority

import (
	"path/filepath"

	"github.com/gofrs/flock"
)

// StatuslineLock guards concurrent statusline invocations: the multiplexer
// fires this tool's statusline command on every status-interval tick, and
// a slow instance must not pile up alongside a fresh one.
type StatuslineLock struct {
	fl *flock.Flock
}

// NewStatuslineLock opens (without acquiring) the lock file at
// <baseDir>/statusline.lock.
func NewStatuslineLock(baseDir string) *StatuslineLock {
	return &StatuslineLock{fl: flock.New(filepath.Join(baseDir, "statusline.lock"))}
}

// TryLock attempts a non-blocking acquire. acquired is false when another
// instance already holds it — the caller should emit the minimal "AH" and
// exit rather than wait.
func (l *StatuslineLock) TryLock() (acquired bool, err error) {
	return l.fl.TryLock()
}

// Unlock releases the lock.
func (l *StatuslineLock) Unlock() error {
	return l.fl.Unlock()
}
