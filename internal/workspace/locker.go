package workspace

import "sync"

type pathLock struct {
	mu   sync.RWMutex
	refs int
}

// Locker serializes mutations per canonical workspace path. Readers share the
// lock with each other but wait behind an in-flight mutation.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*pathLock
}

func NewLocker() *Locker {
	return &Locker{
		locks: make(map[string]*pathLock),
	}
}

// Lock acquires the exclusive lock for path and returns its release func.
func (l *Locker) Lock(path string) func() {
	entry := l.acquire(path)
	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		l.release(path)
	}
}

// RLock acquires the shared lock for path and returns its release func.
func (l *Locker) RLock(path string) func() {
	entry := l.acquire(path)
	entry.mu.RLock()

	return func() {
		entry.mu.RUnlock()
		l.release(path)
	}
}

func (l *Locker) acquire(path string) *pathLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[path]
	if !ok {
		entry = &pathLock{}
		l.locks[path] = entry
	}
	entry.refs++

	return entry
}

func (l *Locker) release(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[path]
	if !ok {
		return
	}

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, path)
	}
}
