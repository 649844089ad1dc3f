package services

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSelectionTTL bounds how long a map-page selection survives
// before the report page must start over.
const DefaultSelectionTTL = 30 * time.Minute

type selectionEntry struct {
	binIDs    []int
	expiresAt time.Time
}

// SelectionStore carries a supervisor's map selection across the page
// boundary into the report flow. The map page puts the selected bin ids
// and hands the returned token to the report page, which reads (and
// eventually clears) them. Entries expire after the TTL; Get does not
// consume the token, so a page refresh can re-read it.
type SelectionStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]selectionEntry
}

func NewSelectionStore(ttl time.Duration) *SelectionStore {
	if ttl <= 0 {
		ttl = DefaultSelectionTTL
	}
	return &SelectionStore{
		ttl:     ttl,
		entries: make(map[string]selectionEntry),
	}
}

// Put stores a selection and returns its token.
func (s *SelectionStore) Put(binIDs []int) string {
	token := uuid.New().String()
	ids := make([]int, len(binIDs))
	copy(ids, binIDs)

	s.mu.Lock()
	s.entries[token] = selectionEntry{binIDs: ids, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// Get returns the selection behind a token. Expired entries report
// not-found and are evicted on the spot.
func (s *SelectionStore) Get(token string) ([]int, bool) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		s.Clear(token)
		return nil, false
	}
	ids := make([]int, len(entry.binIDs))
	copy(ids, entry.binIDs)
	return ids, true
}

// Clear removes a selection. Clearing an unknown token is a no-op.
func (s *SelectionStore) Clear(token string) {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
}

// Len reports how many selections are currently held.
func (s *SelectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Run sweeps expired entries periodically. Meant to be started once as
// a goroutine alongside the websocket hub.
func (s *SelectionStore) Run() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		removed := 0
		for token, entry := range s.entries {
			if now.After(entry.expiresAt) {
				delete(s.entries, token)
				removed++
			}
		}
		s.mu.Unlock()
		if removed > 0 {
			log.Printf("selection store: swept %d expired entries", removed)
		}
	}
}
