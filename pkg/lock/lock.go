package lock

import (
	"context"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const retryDelay = 100 * time.Millisecond

// Lock guards the workspace so two runs do not interleave writes to the
// generated Dockerfiles. Cross-process exclusion via flock(2).
type Lock struct {
	fl *flock.Flock
}

func New(path string) *Lock {
	return &Lock{fl: flock.New(path)}
}

// Lock acquires the lock, blocking until available or ctx is cancelled.
func (l *Lock) Lock(ctx context.Context) error {
	ok, err := l.fl.TryLockContext(ctx, retryDelay)
	if err != nil {
		return errors.Wrapf(err, "acquire lock %s", l.fl.Path())
	}
	if !ok {
		return errors.Errorf("lock %s is held by another process", l.fl.Path())
	}
	return nil
}

// TryLock attempts a non-blocking acquisition.
// Returns (false, nil) if the lock is currently held elsewhere.
func (l *Lock) TryLock() (bool, error) {
	return l.fl.TryLock()
}

// Unlock releases the lock.
func (l *Lock) Unlock() error {
	return errors.Wrapf(l.fl.Unlock(), "release lock %s", l.fl.Path())
}
