package command

import "sync"

// ItemLocks serializes ledger mutations per item id. The record store offers
// no per-record locking, so two concurrent writers against the same item
// would otherwise both read a stale quantity and overwrite each other's
// delta. One ItemLocks instance is shared by the reserve and receive
// handlers.
type ItemLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewItemLocks creates an empty lock table.
func NewItemLocks() *ItemLocks {
	return &ItemLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for an item id, creating it on first use, and
// returns the unlock function.
func (l *ItemLocks) Lock(itemID string) func() {
	l.mu.Lock()
	m, ok := l.locks[itemID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[itemID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
