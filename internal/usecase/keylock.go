package usecase

import "sync"

// keyLock serializes work per string key. Entries are reference-counted
// and removed once the last holder unlocks, so the map does not grow with
// the number of distinct waybills seen.
type keyLock struct {
	mu    sync.Mutex
	locks map[string]*keyLockEntry
}

type keyLockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[string]*keyLockEntry)}
}

func (l *keyLock) Lock(key string) {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &keyLockEntry{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

func (l *keyLock) Unlock(key string) {
	l.mu.Lock()
	entry := l.locks[key]
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
