package dex

import "sort"

// EncounterRow is one flattened (location area, version) pair from the catalog.
type EncounterRow struct {
	LocationArea string
	Version      string
}

// EncounterMap groups wild locations per game version. Versions is ordered by
// display label; each location list is deduplicated and sorted by raw name.
type EncounterMap struct {
	Versions  []string
	ByVersion map[string][]string
}

// Empty reports whether the species has no wild locations (or the fetch
// failed; callers cannot tell the two apart and that is intentional).
func (em EncounterMap) Empty() bool { return len(em.Versions) == 0 }

// NormalizeEncounters rebuilds an EncounterMap from raw rows. Output is
// deterministic for a given input multiset regardless of row order.
func NormalizeEncounters(rows []EncounterRow) EncounterMap {
	seen := map[string]map[string]struct{}{}
	for _, r := range rows {
		if r.Version == "" || r.LocationArea == "" {
			continue
		}
		if seen[r.Version] == nil {
			seen[r.Version] = map[string]struct{}{}
		}
		seen[r.Version][r.LocationArea] = struct{}{}
	}
	em := EncounterMap{ByVersion: map[string][]string{}}
	for v, locs := range seen {
		list := make([]string, 0, len(locs))
		for l := range locs {
			list = append(list, l)
		}
		sort.Strings(list)
		em.ByVersion[v] = list
		em.Versions = append(em.Versions, v)
	}
	sort.Slice(em.Versions, func(i, j int) bool {
		li, lj := VersionLabel(em.Versions[i]), VersionLabel(em.Versions[j])
		if li != lj {
			return li < lj
		}
		return em.Versions[i] < em.Versions[j]
	})
	return em
}
