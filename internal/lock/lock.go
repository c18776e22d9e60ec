// Package lock provides file-based locking for rosctl operations.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrLocked indicates another process holds the lock.
var ErrLocked = errors.New("lock already held")

// Lock represents a file-based lock.
type Lock struct {
	operation string
	path      string
	file      *os.File
}

// New creates a lock for the given operation in dir. The lock file is
// dir/.<operation>.lock and is removed on release.
func New(dir, operation string) *Lock {
	return &Lock{
		operation: operation,
		path:      filepath.Join(dir, "."+operation+".lock"),
	}
}

// Acquire attempts to acquire the lock without blocking.
// Returns an error wrapping ErrLocked if another holder has it.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	if err := lockFile(f); err != nil {
		f.Close()
		l.file = nil
		if errors.Is(err, ErrLocked) {
			return fmt.Errorf("another %s operation is already running: %w", l.operation, ErrLocked)
		}
		return fmt.Errorf("acquire lock: %w", err)
	}

	// Write PID to lock file for debugging
	f.Truncate(0)
	f.Seek(0, 0)
	fmt.Fprintf(f, "%d\n", os.Getpid())

	l.file = f
	return nil
}

// Release releases the lock and removes the lock file.
func (l *Lock) Release() error {
	if l.file == nil {
		return nil
	}

	if err := unlockFile(l.file); err != nil {
		l.file.Close()
		l.file = nil
		return fmt.Errorf("release lock: %w", err)
	}

	l.file.Close()
	os.Remove(l.path)
	l.file = nil

	return nil
}

// WithLock executes a function while holding the lock.
// The lock is automatically released when the function returns.
func WithLock(dir, operation string, fn func() error) error {
	lock := New(dir, operation)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	return fn()
}
