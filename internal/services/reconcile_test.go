package services

import (
	"sort"
	"testing"
)

func sorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDedupeNames(t *testing.T) {
	got := DedupeNames([]string{"Jazz", "Rock n Roll", "Jazz", "Blues", "Blues"})
	want := []string{"Jazz", "Rock n Roll", "Blues"}
	if !equalSlices(got, want) {
		t.Fatalf("DedupeNames = %v, want %v", got, want)
	}
}

func TestDedupeNamesCaseSensitive(t *testing.T) {
	got := DedupeNames([]string{"jazz", "Jazz"})
	if len(got) != 2 {
		t.Fatalf("expected case-sensitive dedup to keep both, got %v", got)
	}
}

func TestDiffGenres(t *testing.T) {
	tests := []struct {
		name       string
		current    []string
		submitted  []string
		wantAdd    []string
		wantRemove []string
	}{
		{
			name:       "empty current adds everything",
			current:    nil,
			submitted:  []string{"Jazz", "Blues"},
			wantAdd:    []string{"Blues", "Jazz"},
			wantRemove: nil,
		},
		{
			name:       "empty submission removes everything",
			current:    []string{"Jazz", "Blues"},
			submitted:  nil,
			wantAdd:    nil,
			wantRemove: []string{"Blues", "Jazz"},
		},
		{
			name:       "overlap only changes the difference",
			current:    []string{"Jazz", "Blues", "Folk"},
			submitted:  []string{"Blues", "Folk", "Soul"},
			wantAdd:    []string{"Soul"},
			wantRemove: []string{"Jazz"},
		},
		{
			name:       "identical sets change nothing",
			current:    []string{"Jazz"},
			submitted:  []string{"Jazz"},
			wantAdd:    nil,
			wantRemove: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove := DiffGenres(tt.current, tt.submitted)
			if !equalSlices(sorted(toAdd), sorted(tt.wantAdd)) {
				t.Errorf("toAdd = %v, want %v", toAdd, tt.wantAdd)
			}
			if !equalSlices(sorted(toRemove), sorted(tt.wantRemove)) {
				t.Errorf("toRemove = %v, want %v", toRemove, tt.wantRemove)
			}
		})
	}
}

func TestDiffGenresDisjointOutputs(t *testing.T) {
	toAdd, toRemove := DiffGenres([]string{"Jazz", "Blues"}, []string{"Blues", "Soul"})
	for _, a := range toAdd {
		for _, r := range toRemove {
			if a == r {
				t.Fatalf("name %q appears in both toAdd and toRemove", a)
			}
		}
	}
}
