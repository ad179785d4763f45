package recommend_test

import (
	"testing"

	"github.com/lawrencedcodes/pathways/internal/recommend"
)

func TestMemoryStore_ReplaceForUser(t *testing.T) {
	store := recommend.NewMemoryStore()

	first, err := store.ReplaceForUser(1, []recommend.Recommendation{
		{UserID: 1, CareerID: 101, CareerTitle: "Frontend Developer", MatchPercentage: 82},
		{UserID: 1, CareerID: 102, CareerTitle: "UX Designer", MatchPercentage: 71},
	})
	if err != nil {
		t.Fatalf("ReplaceForUser() error = %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("stored %d recs, want 2", len(first))
	}

	oldIDs := make(map[int64]bool)
	for _, rec := range first {
		if rec.ID == 0 {
			t.Error("stored recommendation has no ID")
		}
		oldIDs[rec.ID] = true
	}

	// Regeneration fully replaces the previous set; old IDs never reappear.
	second, err := store.ReplaceForUser(1, []recommend.Recommendation{
		{UserID: 1, CareerID: 103, CareerTitle: "Data Scientist", MatchPercentage: 64},
	})
	if err != nil {
		t.Fatalf("ReplaceForUser() error = %v", err)
	}

	current, err := store.ListForUser(1)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(current) != 1 {
		t.Fatalf("ListForUser() = %d recs, want 1 after replacement", len(current))
	}
	if current[0].ID != second[0].ID {
		t.Errorf("listed ID %d does not match stored ID %d", current[0].ID, second[0].ID)
	}
	if oldIDs[current[0].ID] {
		t.Error("a replaced recommendation ID reappeared")
	}
}

func TestMemoryStore_ReplaceWithEmptyClearsSet(t *testing.T) {
	store := recommend.NewMemoryStore()

	if _, err := store.ReplaceForUser(1, []recommend.Recommendation{
		{UserID: 1, CareerID: 101, MatchPercentage: 90},
	}); err != nil {
		t.Fatalf("ReplaceForUser() error = %v", err)
	}
	if _, err := store.ReplaceForUser(1, nil); err != nil {
		t.Fatalf("ReplaceForUser(nil) error = %v", err)
	}

	recs, err := store.ListForUser(1)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("ListForUser() = %d recs, want 0", len(recs))
	}
}

func TestMemoryStore_ListSortsByMatch(t *testing.T) {
	store := recommend.NewMemoryStore()

	if _, err := store.ReplaceForUser(2, []recommend.Recommendation{
		{UserID: 2, CareerID: 1, MatchPercentage: 55},
		{UserID: 2, CareerID: 2, MatchPercentage: 91},
		{UserID: 2, CareerID: 3, MatchPercentage: 73},
	}); err != nil {
		t.Fatalf("ReplaceForUser() error = %v", err)
	}

	recs, err := store.ListForUser(2)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].MatchPercentage < recs[i].MatchPercentage {
			t.Errorf("list not sorted descending: %v before %v", recs[i-1].MatchPercentage, recs[i].MatchPercentage)
		}
	}
}

func TestMemoryStore_RejectsMismatchedUser(t *testing.T) {
	store := recommend.NewMemoryStore()

	_, err := store.ReplaceForUser(1, []recommend.Recommendation{
		{UserID: 2, CareerID: 1, MatchPercentage: 60},
	})
	if err == nil {
		t.Error("ReplaceForUser() should reject recommendations for a different user")
	}
}

func TestMemoryStore_UsersAreIsolated(t *testing.T) {
	store := recommend.NewMemoryStore()

	if _, err := store.ReplaceForUser(1, []recommend.Recommendation{
		{UserID: 1, CareerID: 1, MatchPercentage: 60},
	}); err != nil {
		t.Fatalf("ReplaceForUser() error = %v", err)
	}
	if _, err := store.ReplaceForUser(2, []recommend.Recommendation{
		{UserID: 2, CareerID: 2, MatchPercentage: 70},
	}); err != nil {
		t.Fatalf("ReplaceForUser() error = %v", err)
	}

	recs, err := store.ListForUser(1)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(recs) != 1 || recs[0].CareerID != 1 {
		t.Errorf("user 1 list = %+v, want only career 1", recs)
	}
}
