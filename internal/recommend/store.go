package recommend

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Store persists recommendation sets. Regeneration replaces a user's whole
// set: callers get "latest assessment" semantics and no history is kept.
type Store interface {
	// ReplaceForUser deletes the user's previous recommendations and inserts
	// the new set, returning the stored records with assigned IDs.
	ReplaceForUser(userID int64, recs []Recommendation) ([]Recommendation, error)
	// ListForUser returns the user's current recommendations ordered by match
	// percentage, highest first.
	ListForUser(userID int64) ([]Recommendation, error)
}

// MemoryStore is an in-memory implementation of Store.
type MemoryStore struct {
	byUser map[int64][]Recommendation
	nextID int64
	mu     sync.RWMutex
}

// NewMemoryStore creates a new in-memory recommendation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byUser: make(map[int64][]Recommendation),
		nextID: 1,
	}
}

func (s *MemoryStore) ReplaceForUser(userID int64, recs []Recommendation) ([]Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		if rec.UserID != userID {
			return nil, fmt.Errorf("recommendation user %d does not match %d", rec.UserID, userID)
		}
		rec.ID = s.nextID
		s.nextID++
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now()
		}
		stored = append(stored, rec)
	}
	s.byUser[userID] = stored

	return append([]Recommendation{}, stored...), nil
}

func (s *MemoryStore) ListForUser(userID int64) ([]Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := append([]Recommendation{}, s.byUser[userID]...)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})
	return recs, nil
}
