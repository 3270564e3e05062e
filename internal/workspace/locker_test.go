package workspace

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (l *Locker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}

func TestLocker_SerializesWriters(t *testing.T) {
	locker := NewLocker()

	var (
		active  atomic.Int32
		maxSeen atomic.Int32
		wg      sync.WaitGroup
	)

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := locker.Lock("/repo")
			defer unlock()

			n := active.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
	assert.Zero(t, locker.size())
}

func TestLocker_ReadersShare(t *testing.T) {
	locker := NewLocker()

	first := locker.RLock("/repo")
	acquired := make(chan struct{})
	go func() {
		second := locker.RLock("/repo")
		close(acquired)
		second()
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second reader blocked behind the first")
	}
	first()

	assert.Zero(t, locker.size())
}

func TestLocker_ReaderWaitsForWriter(t *testing.T) {
	locker := NewLocker()

	unlock := locker.Lock("/repo")
	acquired := make(chan struct{})
	go func() {
		release := locker.RLock("/repo")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("reader acquired the lock during a mutation")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("reader never acquired the lock")
	}
}

func TestLocker_PathsAreIndependent(t *testing.T) {
	locker := NewLocker()

	unlockA := locker.Lock("/a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock("/b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on /b blocked behind /a")
	}
	require.Equal(t, 1, locker.size())
}
