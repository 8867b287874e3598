package dex

// Species is one catalog entry. Index is the stable 1-based dex number and,
// because the store is gapless and index-ordered, it doubles as position+1.
type Species struct {
	Index      int
	Name       string
	ArtworkURL string
	SpriteURL  string

	// filled in on enrichment; empty Types means the record is still a stub
	Types    []string
	HeightDm int
	WeightDg int
}

// Detailed reports whether the record has been enriched. Types is non-empty
// for every real species, so it carries the stub/detailed state.
func (s Species) Detailed() bool { return len(s.Types) > 0 }

// Detail carries the fields merged into a stub on enrichment.
type Detail struct {
	Types    []string
	HeightDm int
	WeightDg int
}

// Store is the ordered, gapless species sequence loaded from the catalog.
type Store struct {
	items []Species
}

func NewStore(items []Species) *Store { return &Store{items: items} }

func (st *Store) Len() int { return len(st.items) }

// At returns the record at a 0-based position. Positions outside the sequence
// return a zero Species.
func (st *Store) At(pos int) Species {
	if pos < 0 || pos >= len(st.items) {
		return Species{}
	}
	return st.items[pos]
}

// PositionOf resolves a species index to its position by matching the stored
// index field, not by arithmetic, so a sparse catalog still resolves correctly.
func (st *Store) PositionOf(index int) (int, bool) {
	for i, it := range st.items {
		if it.Index == index {
			return i, true
		}
	}
	return 0, false
}

// Enrich merges detail into the record with the given species index. The
// transition happens at most once: an already-detailed record is left alone,
// so a stale in-flight fetch landing late is harmless. Reports whether the
// record transitioned.
func (st *Store) Enrich(index int, d Detail) bool {
	pos, ok := st.PositionOf(index)
	if !ok || len(d.Types) == 0 {
		return false
	}
	if st.items[pos].Detailed() {
		return false
	}
	st.items[pos].Types = d.Types
	st.items[pos].HeightDm = d.HeightDm
	st.items[pos].WeightDg = d.WeightDg
	return true
}

// All returns the backing sequence in catalog order for filtering.
func (st *Store) All() []Species { return st.items }
