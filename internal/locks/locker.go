package locks

import "context"

// ReleaseFunc gives a held lock back. It is safe to call with a context
// that outlives the request which acquired the lock.
type ReleaseFunc func(ctx context.Context) error

// Locker serialises work on a key, such as the rollup of one task.
type Locker interface {
	// Acquire blocks until the lock for key is held or ctx is done.
	Acquire(ctx context.Context, key string) (ReleaseFunc, error)
}
