package dex

import "testing"

func stubStore() *Store {
	return NewStore([]Species{
		{Index: 1, Name: "bulbasaur"},
		{Index: 2, Name: "ivysaur"},
		{Index: 3, Name: "venusaur"},
	})
}

func TestEnrichOnce(t *testing.T) {
	st := stubStore()
	if !st.Enrich(2, Detail{Types: []string{"grass", "poison"}, HeightDm: 10, WeightDg: 130}) {
		t.Fatalf("expected first enrich to transition")
	}
	if st.Enrich(2, Detail{Types: []string{"fire"}}) {
		t.Fatalf("second enrich must be a no-op")
	}
	sp := st.At(1)
	if !sp.Detailed() || sp.Types[0] != "grass" || sp.HeightDm != 10 {
		t.Fatalf("enrichment not applied: %+v", sp)
	}
}

func TestEnrichAppliesAtOriginalIndex(t *testing.T) {
	// a stale detail result still lands on the record it was issued for
	st := stubStore()
	if !st.Enrich(3, Detail{Types: []string{"grass"}}) {
		t.Fatalf("enrich by index failed")
	}
	if st.At(0).Detailed() || st.At(1).Detailed() {
		t.Fatalf("enrichment leaked to other records")
	}
}

func TestEnrichRejectsEmptyTypes(t *testing.T) {
	st := stubStore()
	if st.Enrich(1, Detail{}) {
		t.Fatalf("empty detail must not transition the record")
	}
}

func TestPositionOf(t *testing.T) {
	st := stubStore()
	if pos, ok := st.PositionOf(3); !ok || pos != 2 {
		t.Fatalf("expected position 2, got %d %v", pos, ok)
	}
	if _, ok := st.PositionOf(999); ok {
		t.Fatalf("expected miss for unknown index")
	}
}
