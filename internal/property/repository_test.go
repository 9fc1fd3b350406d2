package property

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/evcraddock/rent-finder/internal/db"
)

func TestRecordAndListProperties(t *testing.T) {
	repo := testRepo(t)

	first := Draft{
		Title:    "Harbour View Flat",
		Location: "Lekki, Lagos",
		Price:    130000,
		Period:   "/month",
		Type:     Apartment,
		City:     Lagos,
		Images:   []string{"1.jpg", "2.jpg", "3.jpg"},
		Coords:   Coords{Lat: 6.45, Lng: 3.6},
	}.Build(14)
	second := Draft{
		Title:    "Warehouse Unit",
		Location: "Industrial Area, Nairobi",
		Price:    80000,
		Type:     Warehouse,
		City:     Nairobi,
	}.Build(15)

	for _, p := range []Property{first, second} {
		if err := repo.RecordProperty(p); err != nil {
			t.Fatalf("record %d: %v", p.ID, err)
		}
	}

	got, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]Property{first, second}, got); diff != "" {
		t.Errorf("listings mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordPropertyDuplicateID(t *testing.T) {
	repo := testRepo(t)

	p := Draft{Title: "Dup", Location: "Somewhere", Type: House, City: Lagos}.Build(20)
	if err := repo.RecordProperty(p); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := repo.RecordProperty(p); err == nil {
		t.Fatal("expected error recording the same id twice")
	}
}

func TestListEmpty(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d listings, want 0", len(got))
	}
}

func TestRecordSaved(t *testing.T) {
	repo := testRepo(t)

	const alice, bob = "alice@example.com", "bob@example.com"
	steps := []struct {
		owner string
		id    int64
		saved bool
	}{
		{alice, 3, true},
		{alice, 7, true},
		{bob, 7, true},
		{alice, 3, false},
		{alice, 12, true},
		{alice, 3, true},
		{alice, 7, true}, // already saved, ignored
		{bob, 12, false}, // never saved, ignored
	}
	for _, s := range steps {
		if err := repo.RecordSaved(s.owner, s.id, s.saved); err != nil {
			t.Fatalf("record saved %s %d=%v: %v", s.owner, s.id, s.saved, err)
		}
	}

	got, err := repo.Saved()
	if err != nil {
		t.Fatalf("saved ids: %v", err)
	}
	want := map[string][]int64{
		alice: {7, 12, 3},
		bob:   {7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("saved ids (-want +got):\n%s", diff)
	}
}

func TestSavedEmpty(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.Saved()
	if err != nil {
		t.Fatalf("saved ids: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no saved sets", got)
	}
}

func testRepo(t *testing.T) *Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	return NewRepository(d)
}
