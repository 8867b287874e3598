package dex

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// FilterMode narrows the list view by caught status.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterMissing
	FilterCaught
)

func (m FilterMode) String() string {
	switch m {
	case FilterMissing:
		return "missing"
	case FilterCaught:
		return "caught"
	default:
		return "all"
	}
}

// Next cycles all -> missing -> caught -> all.
func (m FilterMode) Next() FilterMode { return (m + 1) % 3 }

// FilterSpecies applies query then mode, preserving catalog order. The query
// matches case-insensitive name substrings and decimal index substrings. When
// a non-empty query matches nothing, close-name candidates within a small
// edit distance are offered instead so typos still land.
func FilterSpecies(items []Species, query string, mode FilterMode, caught map[int]bool) []Species {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Species
	for _, it := range items {
		if q != "" && !matchesQuery(it, q) {
			continue
		}
		if !modeKeeps(mode, it.Index, caught) {
			continue
		}
		out = append(out, it)
	}
	if q != "" && len(out) == 0 {
		out = fuzzyFallback(items, q, mode, caught)
	}
	return out
}

func matchesQuery(s Species, q string) bool {
	if strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	return strings.Contains(strconv.Itoa(s.Index), q)
}

func modeKeeps(mode FilterMode, index int, caught map[int]bool) bool {
	switch mode {
	case FilterMissing:
		return !caught[index]
	case FilterCaught:
		return caught[index]
	default:
		return true
	}
}

// distanceLimit scales the allowed edit distance with name length.
func distanceLimit(l int) int {
	switch {
	case l <= 4:
		return 1
	case l <= 8:
		return 2
	default:
		return 3
	}
}

func fuzzyFallback(items []Species, q string, mode FilterMode, caught map[int]bool) []Species {
	type scored struct {
		sp   Species
		dist int
	}
	var hits []scored
	for _, it := range items {
		if !modeKeeps(mode, it.Index, caught) {
			continue
		}
		d := levenshtein.ComputeDistance(q, strings.ToLower(it.Name))
		if d <= distanceLimit(len(it.Name)) {
			hits = append(hits, scored{sp: it, dist: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	out := make([]Species, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.sp)
	}
	return out
}
