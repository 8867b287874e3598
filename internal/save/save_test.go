package save

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "caught.json"))
}

func TestToggleFlipsMembership(t *testing.T) {
	set := map[int]bool{3: true}
	after := Toggle(set, 7)
	if !after[7] || !after[3] {
		t.Fatalf("expected 7 added, got %v", after)
	}
	if !set[3] || set[7] {
		t.Fatalf("Toggle mutated its input: %v", set)
	}
	if removed := Toggle(after, 3); removed[3] {
		t.Fatalf("expected 3 removed, got %v", removed)
	}
}

func TestToggleDoubleToggleIdentity(t *testing.T) {
	set := map[int]bool{1: true, 25: true}
	back := Toggle(Toggle(set, 25), 25)
	if !reflect.DeepEqual(back, set) {
		t.Fatalf("double toggle changed set: %v vs %v", back, set)
	}
	back = Toggle(Toggle(set, 4), 4)
	if !reflect.DeepEqual(back, set) {
		t.Fatalf("double toggle of absent index changed set: %v", back)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)
	set := map[int]bool{1: true, 25: true, 151: true}
	if err := s.Save(set); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.Load(); !reflect.DeepEqual(got, set) {
		t.Fatalf("round trip mismatch: %v vs %v", got, set)
	}
}

func TestLoadAbsentFile(t *testing.T) {
	s := tempStore(t)
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty set for absent file, got %v", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty set for corrupt file, got %v", got)
	}
}

func TestLoadDropsNonPositive(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.path, []byte("[0,-3,5,5]"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := s.Load()
	if len(got) != 1 || !got[5] {
		t.Fatalf("expected {5}, got %v", got)
	}
}
