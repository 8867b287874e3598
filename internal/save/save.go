// Package save persists the caught set as a single JSON blob on disk.
package save

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/natefinch/atomic"
)

// Store owns the caught-set file: one file holding a JSON array of dex numbers.
type Store struct {
	path string
}

func NewStore(path string) *Store { return &Store{path: path} }

// DefaultPath resolves the per-user save location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "caught.json"
	}
	return filepath.Join(home, ".rotom-dex", "caught.json")
}

// Load reads the caught set. A missing, unreadable or malformed file yields an
// empty set; persistence is never a reason to fail startup.
func (s *Store) Load() map[int]bool {
	set := map[int]bool{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return set
	}
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return set
	}
	for _, id := range ids {
		if id > 0 {
			set[id] = true
		}
	}
	return set
}

// Save writes the full set in one atomic replace, so a failed write leaves the
// previous file intact. Callers treat errors as non-fatal.
func (s *Store) Save(set map[int]bool) error {
	ids := make([]int, 0, len(set))
	for id, ok := range set {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return atomic.WriteFile(s.path, bytes.NewReader(data))
}

// Toggle returns a copy of set with idx's membership flipped. The caller is
// responsible for saving the result.
func Toggle(set map[int]bool, idx int) map[int]bool {
	out := make(map[int]bool, len(set)+1)
	for id, ok := range set {
		if ok {
			out[id] = true
		}
	}
	if out[idx] {
		delete(out, idx)
	} else {
		out[idx] = true
	}
	return out
}
