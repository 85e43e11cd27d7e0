package query

import (
	"slices"
	"testing"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

func ids(entries []stubEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.id
	}
	return out
}

func TestGetByID(t *testing.T) {
	svc := New[stubEntry](newTestRepo())

	e, ok := svc.GetByID("sarcopenia")
	if !ok || e.EntryID() != "sarcopenia" {
		t.Fatalf("GetByID(sarcopenia) = %v, %v", e, ok)
	}
	if _, ok := svc.GetByID("unknown"); ok {
		t.Error("expected miss for unknown id")
	}
	if _, ok := svc.GetByID(""); ok {
		t.Error("expected miss for empty id")
	}
}

func TestGetByID_SelfConsistent(t *testing.T) {
	svc := New[stubEntry](newTestRepo())
	for _, id := range svc.IDs() {
		e, ok := svc.GetByID(id)
		if !ok || e.EntryID() != id {
			t.Errorf("GetByID(%q) returned %q, %v", id, e.EntryID(), ok)
		}
	}
}

func TestSearch(t *testing.T) {
	svc := New[stubEntry](newTestRepo())

	tests := []struct {
		query string
		want  []string
	}{
		{"fall", []string{"frailty-syndrome", "falls-prevention"}},
		{"FALL", []string{"frailty-syndrome", "falls-prevention"}},
		{"muscle", []string{"sarcopenia"}},
		{"acute", []string{"delirium"}},
		{"CAÍDAS", []string{"falls-prevention"}},
		{"cardiology", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ids(svc.Search(tt.query))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearch_EmptyReturnsEverything(t *testing.T) {
	svc := New[stubEntry](newTestRepo())
	got := svc.Search("")
	if len(got) != svc.Count() {
		t.Fatalf("Search(\"\") len = %d, want %d", len(got), svc.Count())
	}
	if !slices.Equal(ids(got), svc.IDs()) {
		t.Errorf("Search(\"\") order = %v, want %v", ids(got), svc.IDs())
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	svc := New[stubEntry](newTestRepo())
	for _, q := range []string{"frailty", "syndrome", "Osteo"} {
		lower := ids(svc.Search(q))
		upper := ids(svc.Search(entry.Fold(q)))
		if !slices.Equal(lower, upper) {
			t.Errorf("Search(%q) = %v differs from folded query %v", q, lower, upper)
		}
	}
}

func TestSearch_Idempotent(t *testing.T) {
	svc := New[stubEntry](newTestRepo())
	first := ids(svc.Search("fall"))
	second := ids(svc.Search("fall"))
	if !slices.Equal(first, second) {
		t.Errorf("repeated Search differs: %v vs %v", first, second)
	}
}

func TestSearch_NonNilOnMiss(t *testing.T) {
	svc := New[stubEntry](newTestRepo())
	if got := svc.Search("zzz"); got == nil {
		t.Error("Search miss must return an empty non-nil slice")
	}
}

func TestFilterByCategory(t *testing.T) {
	svc := New[stubEntry](newTestRepo())

	got := svc.FilterByCategory("musculoskeletal")
	if !slices.Equal(ids(got), []string{"sarcopenia", "osteoporosis"}) {
		t.Errorf("FilterByCategory = %v", ids(got))
	}
	for _, e := range got {
		if e.EntryCategory() != "musculoskeletal" {
			t.Errorf("%s has category %q", e.id, e.EntryCategory())
		}
	}
	if got := svc.FilterByCategory("MUSCULOSKELETAL"); len(got) != 0 {
		t.Errorf("category match must be exact, got %v", ids(got))
	}
	if got := svc.FilterByCategory("unknown"); got == nil || len(got) != 0 {
		t.Errorf("FilterByCategory(unknown) = %v, want empty non-nil", got)
	}
}

func TestCountAndIDs(t *testing.T) {
	repo := newTestRepo()
	svc := New[stubEntry](repo)
	if svc.Count() != 5 {
		t.Errorf("Count() = %d, want 5", svc.Count())
	}
	if len(svc.IDs()) != svc.Count() || len(svc.List()) != svc.Count() {
		t.Error("IDs() and List() must agree with Count()")
	}
	if svc.Name() != "test" {
		t.Errorf("Name() = %q", svc.Name())
	}
}

func TestCategoriesAndStats(t *testing.T) {
	svc := New[stubEntry](newTestRepo())
	wantCats := []string{"syndrome", "musculoskeletal", "injury-prevention", "neuropsychiatric"}
	if got := svc.Categories(); !slices.Equal(got, wantCats) {
		t.Errorf("Categories() = %v, want %v", got, wantCats)
	}
	stats := svc.CategoryStats()
	total := 0
	for _, s := range stats {
		total += s.Count
	}
	if total != svc.Count() {
		t.Errorf("CategoryStats total = %d, want %d", total, svc.Count())
	}
	if stats[1] != (CategoryCount{Category: "musculoskeletal", Count: 2}) {
		t.Errorf("stats[1] = %+v", stats[1])
	}
}

func TestWhere(t *testing.T) {
	svc := New[stubEntry](newTestRepo())
	got := svc.Where(func(e stubEntry) bool { return len(e.fields) > 2 })
	if !slices.Equal(ids(got), []string{"frailty-syndrome", "sarcopenia", "falls-prevention", "delirium"}) {
		t.Errorf("Where = %v", ids(got))
	}
}

func TestLookup(t *testing.T) {
	svc := New[stubEntry](newTestRepo())
	e, ok := svc.Lookup("delirium")
	if !ok || e.EntryID() != "delirium" {
		t.Fatalf("Lookup(delirium) = %v, %v", e, ok)
	}
	e, ok = svc.Lookup("unknown")
	if ok || e != nil {
		t.Errorf("Lookup(unknown) = %v, %v, want nil, false", e, ok)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	svc := New[stubEntry](newTestRepo())
	list := svc.List()
	list[0] = stubEntry{id: "mutated"}
	if svc.List()[0].id != "frailty-syndrome" {
		t.Error("List() must return a fresh copy")
	}
}

func TestResults_DoNotShareSlices(t *testing.T) {
	svc := New[stubEntry](newTestRepo())

	svc.Search("sarcopenia")[0].fields[0] = "MUTATED"
	svc.List()[1].fields[0] = "MUTATED"
	svc.Where(func(e stubEntry) bool { return e.id == "sarcopenia" })[0].fields[0] = "MUTATED"
	svc.FilterByCategory("musculoskeletal")[0].fields[0] = "MUTATED"

	if got := svc.List()[1].fields[0]; got != "sarcopenia" {
		t.Errorf("mutating a result leaked into the service: %q", got)
	}
	if len(svc.Search("sarcopenia")) != 1 {
		t.Error("search must still find sarcopenia")
	}
}
