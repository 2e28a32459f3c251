// Package runlock prevents two shelve runs from organizing the same directory
// at the same time.
//
// The lock file lives under the user cache directory, keyed by a hash of the
// absolute target path, so it never appears inside the directory being
// organized and is never itself a move candidate.
package runlock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"shelve/internal/faults"
)

// Lock holds an advisory lock for one target directory.
type Lock struct {
	fl   *flock.Flock
	path string
}

// Acquire takes a non-blocking advisory lock for dir. A second concurrent
// acquire for the same directory fails with faults.ErrLocked.
func Acquire(dir string) (*Lock, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrLocked, "acquire run lock", "resolve target path", err)
	}

	path, err := lockPath(abs)
	if err != nil {
		return nil, faults.Wrap(faults.ErrLocked, "acquire run lock", "resolve lock path", err)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, faults.Wrap(faults.ErrLocked, "acquire run lock", fmt.Sprintf("lock file %s", path), err)
	}
	if !ok {
		return nil, faults.Wrap(faults.ErrLocked, "acquire run lock", fmt.Sprintf("another shelve run is organizing %s", abs), nil)
	}
	return &Lock{fl: fl, path: path}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

func lockPath(absTarget string) (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	lockDir := filepath.Join(base, "shelve")
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(absTarget))
	return filepath.Join(lockDir, fmt.Sprintf("%x.lock", sum[:8])), nil
}
