package store

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sightmap/internal/domain"
)

func marker(id uuid.UUID, cat domain.MarkerCategory) domain.Marker {
	return domain.Marker{
		ID:        id,
		Lat:       43.0,
		Lng:       -76.0,
		Category:  cat,
		CreatedAt: time.Now().UTC(),
		Active:    true,
	}
}

func ids(markers []domain.Marker) []string {
	out := make([]string, len(markers))
	for i, m := range markers {
		out[i] = m.ID.String()
	}
	sort.Strings(out)
	return out
}

func TestMergeMarkers_Union(t *testing.T) {
	a := marker(uuid.New(), domain.CategoryICE)
	b := marker(uuid.New(), domain.CategoryICE)
	c := marker(uuid.New(), domain.CategoryObserver)

	got := MergeMarkers([]domain.Marker{a, b}, []domain.Marker{b, c})
	require.Len(t, got, 3)
	assert.Equal(t, ids([]domain.Marker{a, b, c}), ids(got))
}

func TestMergeMarkers_Idempotent(t *testing.T) {
	s := []domain.Marker{marker(uuid.New(), domain.CategoryICE), marker(uuid.New(), domain.CategoryObserver)}
	got := MergeMarkers(s, s)
	assert.Equal(t, ids(s), ids(got))
}

func TestMergeMarkers_Associative(t *testing.T) {
	a := []domain.Marker{marker(uuid.New(), domain.CategoryICE)}
	b := []domain.Marker{marker(uuid.New(), domain.CategoryICE), a[0]}
	c := []domain.Marker{marker(uuid.New(), domain.CategoryObserver)}

	left := MergeMarkers(MergeMarkers(a, b), c)
	right := MergeMarkers(a, MergeMarkers(b, c))
	assert.Equal(t, ids(left), ids(right))
}

func TestMergeMarkers_KeepsExistingFields(t *testing.T) {
	id := uuid.New()
	orig := marker(id, domain.CategoryICE)
	score := 0.9
	orig.ReliabilityScore = &score

	dupe := marker(id, domain.CategoryICE)
	got := MergeMarkers([]domain.Marker{orig}, []domain.Marker{dupe})
	require.Len(t, got, 1)
	require.NotNil(t, got[0].ReliabilityScore)
	assert.Equal(t, 0.9, *got[0].ReliabilityScore)
}

func TestReplaceCategory(t *testing.T) {
	oldIce := marker(uuid.New(), domain.CategoryICE)
	obs := marker(uuid.New(), domain.CategoryObserver)
	newIce := marker(uuid.New(), domain.CategoryICE)

	got := ReplaceCategory([]domain.Marker{oldIce, obs}, []domain.Marker{newIce}, domain.CategoryICE)
	require.Len(t, got, 2)
	assert.Equal(t, ids([]domain.Marker{obs, newIce}), ids(got))
}

func TestReplaceCategory_EmptyIncomingClearsCategory(t *testing.T) {
	oldIce := marker(uuid.New(), domain.CategoryICE)
	obs := marker(uuid.New(), domain.CategoryObserver)

	got := ReplaceCategory([]domain.Marker{oldIce, obs}, nil, domain.CategoryICE)
	require.Len(t, got, 1)
	assert.Equal(t, obs.ID, got[0].ID)
}

func TestStore_MergeAndSnapshot(t *testing.T) {
	s := New()
	a := marker(uuid.New(), domain.CategoryICE)
	b := marker(uuid.New(), domain.CategoryObserver)

	assert.Equal(t, 2, s.Merge([]domain.Marker{a, b}))
	assert.Equal(t, 2, s.Merge([]domain.Marker{a}))

	snap := s.Snapshot()
	assert.Len(t, snap, 2)

	// Snapshot is a copy; mutating it must not touch the store.
	snap[0].Active = false
	got, ok := s.Get(snap[0].ID)
	require.True(t, ok)
	assert.True(t, got.Active)
}

func TestStore_Get_Missing(t *testing.T) {
	s := New()
	_, ok := s.Get(uuid.New())
	assert.False(t, ok)
}
