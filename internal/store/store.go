package store

import (
	"sync"

	"github.com/google/uuid"

	"sightmap/internal/domain"
)

// MergeMarkers unions incoming into existing keyed by ID: existing entries
// are kept as-is, incoming entries whose ID is already present are skipped.
// Append-only union, so markers fetched by an earlier wider query survive a
// later narrower refresh. Idempotent: MergeMarkers(s, s) equals s.
func MergeMarkers(existing, incoming []domain.Marker) []domain.Marker {
	seen := make(map[uuid.UUID]struct{}, len(existing))
	for _, m := range existing {
		seen[m.ID] = struct{}{}
	}

	out := make([]domain.Marker, 0, len(existing)+len(incoming))
	out = append(out, existing...)
	for _, m := range incoming {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

// ReplaceCategory drops every existing marker of category and installs
// incoming in their place; used when a query result is authoritative for
// that one category. Incoming markers of other categories still merge
// by ID.
func ReplaceCategory(existing, incoming []domain.Marker, category domain.MarkerCategory) []domain.Marker {
	kept := make([]domain.Marker, 0, len(existing))
	for _, m := range existing {
		if m.Category != category {
			kept = append(kept, m)
		}
	}
	return MergeMarkers(kept, incoming)
}

// Store holds the session marker set. Guarded by a RWMutex so concurrent
// HTTP refreshes share one set; every operation preserves the no-duplicate-
// ID invariant via the pure helpers above.
type Store struct {
	mu      sync.RWMutex
	markers []domain.Marker
}

func New() *Store {
	return &Store{}
}

// Merge unions incoming into the session set and returns the new size.
func (s *Store) Merge(incoming []domain.Marker) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers = MergeMarkers(s.markers, incoming)
	return len(s.markers)
}

// ReplaceCategory swaps out one category wholesale.
func (s *Store) ReplaceCategory(incoming []domain.Marker, category domain.MarkerCategory) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers = ReplaceCategory(s.markers, incoming, category)
	return len(s.markers)
}

// Snapshot returns a copy of the current set.
func (s *Store) Snapshot() []domain.Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

func (s *Store) Get(id uuid.UUID) (domain.Marker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.markers {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Marker{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.markers)
}
