// Package storage holds the in-memory primary and replica key-value stores
// backing a single node.
package storage

import (
	"sort"
	"sync"

	"chorddht/internal/domain"
	"chorddht/internal/logger"
)

// Store is an in-memory, concurrency-safe key-value store split into a
// primary section (keys this node owns) and a replica section (keys this
// node holds on behalf of an owner within the replication factor). Both
// sections are indexed by the plain key string; domain.Item.ID is kept on
// the stored value so range queries over the identifier ring stay cheap
// without a second index.
type Store struct {
	lgr     logger.Logger
	space   domain.Space
	mu      sync.RWMutex
	primary map[string]domain.Item
	replica map[string]domain.Item
}

// NewMemoryStore creates an empty in-memory store for the given identifier
// space. There is no persistence: state is lost on restart, per design.
func NewMemoryStore(lgr logger.Logger, space domain.Space) *Store {
	s := &Store{
		lgr:     lgr,
		space:   space,
		primary: make(map[string]domain.Item),
		replica: make(map[string]domain.Item),
	}
	s.lgr.Debug("initialized storage")
	return s
}

// PutPrimary inserts or updates key in the primary store, assigning it the
// next monotonic version for that key (1 if previously absent).
func (s *Store) PutPrimary(key, value string, timestamp int64) domain.Item {
	id := s.space.HashString(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	version := uint64(1)
	if prev, ok := s.primary[key]; ok {
		version = prev.Version + 1
	}
	item := domain.Item{Key: key, ID: id, Value: value, Version: version, Timestamp: timestamp}
	s.primary[key] = item
	s.lgr.Debug("primary store: put", logger.FItem("item", item))
	return item
}

// GetPrimary retrieves key from the primary store.
func (s *Store) GetPrimary(key string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.primary[key]
	return it, ok
}

// DeletePrimary removes key from the primary store, reporting whether it was present.
func (s *Store) DeletePrimary(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.primary[key]
	delete(s.primary, key)
	return ok
}

// PutReplica applies an incoming SyncReplica write. An existing entry with a
// strictly newer local version rejects the write (the entry is left
// untouched); otherwise the write is applied unconditionally, including
// equal versions (so re-delivery of the same tuple is idempotent).
func (s *Store) PutReplica(item domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.replica[item.Key]; ok && item.Version < existing.Version {
		s.lgr.Debug("replica store: stale write rejected",
			logger.FItem("incoming", item), logger.F("localVersion", existing.Version))
		return
	}
	s.replica[item.Key] = item
	s.lgr.Debug("replica store: put", logger.FItem("item", item))
}

// GetReplica retrieves key from the replica store.
func (s *Store) GetReplica(key string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.replica[key]
	return it, ok
}

// DeleteReplica removes key from the replica store, reporting whether it was present.
func (s *Store) DeleteReplica(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.replica[key]
	delete(s.replica, key)
	return ok
}

// Get looks up key in the primary store, falling back to the replica store.
func (s *Store) Get(key string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if it, ok := s.primary[key]; ok {
		return it, true
	}
	it, ok := s.replica[key]
	return it, ok
}

// PrimaryInRange returns every primary-store item whose id lies in the
// (from, to) (or (from, to] when inclusive) arc, per Space.InRange; with
// from == to the arc is empty, or the whole ring when inclusive. Used by
// TransferKeys and by the Notify-driven key hand-off.
func (s *Store) PrimaryInRange(from, to domain.ID, inclusive bool) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Item
	for _, it := range s.primary {
		if s.space.InRange(it.ID, from, to, inclusive) {
			out = append(out, it)
		}
	}
	return out
}

// PrimaryUpTo removes and returns every primary-store item whose id is less
// than or equal to upperBound (a plain, non-wrapping comparison).
func (s *Store) PrimaryUpTo(upperBound domain.ID) []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Item
	for key, it := range s.primary {
		if it.ID.Cmp(upperBound) <= 0 {
			out = append(out, it)
			delete(s.primary, key)
		}
	}
	return out
}

// RemovePrimaryKeys deletes the named keys from the primary store in bulk,
// used once a hand-off batch has been acknowledged by its new owner.
func (s *Store) RemovePrimaryKeys(keys []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.primary, k)
	}
}

// PromoteReplicasInRange moves every replica-store item whose id lies in the
// given arc into the primary store, returning the promoted items so the
// caller can re-replicate them.
func (s *Store) PromoteReplicasInRange(from, to domain.ID, inclusive bool) []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Item
	for key, it := range s.replica {
		if !s.space.InRange(it.ID, from, to, inclusive) {
			continue
		}
		delete(s.replica, key)
		s.primary[key] = it
		out = append(out, it)
	}
	return out
}

// PrimaryCount returns the number of keys held in the primary store.
func (s *Store) PrimaryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.primary)
}

// ReplicaCount returns the number of keys held in the replica store.
func (s *Store) ReplicaCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.replica)
}

// DebugLog emits a structured DEBUG-level snapshot of both stores, sorted by
// key for deterministic output.
func (s *Store) DebugLog() {
	s.mu.RLock()
	primary := make([]string, 0, len(s.primary))
	for k := range s.primary {
		primary = append(primary, k)
	}
	replica := make([]string, 0, len(s.replica))
	for k := range s.replica {
		replica = append(replica, k)
	}
	s.mu.RUnlock()
	sort.Strings(primary)
	sort.Strings(replica)
	s.lgr.Debug("storage snapshot",
		logger.F("primaryCount", len(primary)),
		logger.F("primaryKeys", primary),
		logger.F("replicaCount", len(replica)),
		logger.F("replicaKeys", replica),
	)
}
