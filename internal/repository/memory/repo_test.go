package memory

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

// stubEntry is a minimal entry.Entry for repository tests.
type stubEntry struct {
	id       string
	category string
	invalid  bool
}

func (s stubEntry) EntryID() string        { return s.id }
func (s stubEntry) EntryCategory() string  { return s.category }
func (s stubEntry) SearchFields() []string { return []string{s.id} }
func (s stubEntry) Validate() error {
	if s.invalid {
		return fmt.Errorf("%w: %s", entry.ErrInvalidEntry, s.id)
	}
	return nil
}

func rec(key, id string) Record[stubEntry] {
	return Record[stubEntry]{Key: key, Entry: stubEntry{id: id, category: "c"}}
}

func TestNew_PreservesDeclarationOrder(t *testing.T) {
	repo, err := New("test", []Record[stubEntry]{rec("b", "b"), rec("a", "a"), rec("c", "c")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.IDs(); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("IDs() = %v, want [b a c]", got)
	}
	all := repo.All()
	if len(all) != 3 || all[0].id != "b" || all[2].id != "c" {
		t.Errorf("All() = %v", all)
	}
	if repo.Len() != 3 || repo.Name() != "test" {
		t.Errorf("Len() = %d, Name() = %q", repo.Len(), repo.Name())
	}
}

func TestNew_KeyEqualsID(t *testing.T) {
	repo, err := New("test", []Record[stubEntry]{rec("a", "a"), rec("b", "b")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range repo.IDs() {
		e, ok := repo.Get(id)
		if !ok || e.EntryID() != id {
			t.Errorf("Get(%q) = %v, %v", id, e, ok)
		}
	}
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		records []Record[stubEntry]
		wantErr error
	}{
		{"key mismatch", []Record[stubEntry]{rec("a", "b")}, entry.ErrKeyMismatch},
		{"duplicate id", []Record[stubEntry]{rec("a", "a"), rec("a", "a")}, entry.ErrDuplicateID},
		{"invalid entry", []Record[stubEntry]{{Key: "x", Entry: stubEntry{id: "x", invalid: true}}}, entry.ErrInvalidEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := New("test", tt.records)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if repo != nil {
				t.Error("no repository may be returned on error")
			}
		})
	}
}

func TestNew_CollectsAllErrors(t *testing.T) {
	_, err := New("test", []Record[stubEntry]{rec("a", "b"), rec("c", "c"), rec("c", "c")})
	if !errors.Is(err, entry.ErrKeyMismatch) || !errors.Is(err, entry.ErrDuplicateID) {
		t.Fatalf("expected both errors, got %v", err)
	}
}

func TestGet_Unknown(t *testing.T) {
	repo := Empty[stubEntry]("empty")
	if _, ok := repo.Get("nope"); ok {
		t.Error("expected miss")
	}
	if all := repo.All(); all == nil || len(all) != 0 {
		t.Errorf("All() = %v, want empty non-nil", all)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	repo, err := New("test", []Record[stubEntry]{rec("a", "a")})
	if err != nil {
		t.Fatal(err)
	}
	all := repo.All()
	all[0] = stubEntry{id: "mutated"}
	if e, _ := repo.Get("a"); e.id != "a" {
		t.Error("mutating All() result changed the repository")
	}
	if repo.All()[0].id != "a" {
		t.Error("All() must return a fresh copy")
	}
}

// listEntry holds a slice, so it must be deep-copied on the way out.
type listEntry struct {
	id    string
	items []string
}

func (l listEntry) EntryID() string        { return l.id }
func (l listEntry) EntryCategory() string  { return "list" }
func (l listEntry) SearchFields() []string { return l.items }
func (l listEntry) Validate() error        { return nil }
func (l listEntry) Clone() listEntry {
	l.items = slices.Clone(l.items)
	return l
}

func TestGetAndAll_DeepCopy(t *testing.T) {
	repo, err := New("test", []Record[listEntry]{{Key: "a", Entry: listEntry{id: "a", items: []string{"one", "two"}}}})
	if err != nil {
		t.Fatal(err)
	}

	got, _ := repo.Get("a")
	got.items[0] = "MUTATED"
	repo.All()[0].items[1] = "MUTATED"

	again, _ := repo.Get("a")
	if !slices.Equal(again.items, []string{"one", "two"}) {
		t.Errorf("mutating a returned entry changed the repository: %v", again.items)
	}
}
