package ui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhulst/pokedex-tui/internal/dex"
	"github.com/dhulst/pokedex-tui/internal/pokeapi"
	"github.com/dhulst/pokedex-tui/internal/save"
	"github.com/dhulst/pokedex-tui/internal/util"
)

func testModel(t *testing.T) model {
	t.Helper()
	saves := save.NewStore(filepath.Join(t.TempDir(), "caught.json"))
	m := initialModel(context.Background(), pokeapi.New(""), saves, util.Config{Limit: 3}, "test")
	nm, _ := m.Update(speciesListMsg{items: []dex.Species{
		{Index: 1, Name: "bulbasaur"},
		{Index: 2, Name: "ivysaur"},
		{Index: 3, Name: "venusaur"},
	}})
	return nm.(model)
}

func TestMoveSelectionClamps(t *testing.T) {
	m := testModel(t)
	m.moveSelection(1 << 20)
	if m.selected != 2 {
		t.Fatalf("expected clamp to last position, got %d", m.selected)
	}
	m.moveSelection(-(1 << 20))
	if m.selected != 0 {
		t.Fatalf("expected clamp to first position, got %d", m.selected)
	}
	if m.moveSelection(0) {
		t.Fatalf("zero delta must not report a change")
	}
}

func TestJumpToUnknownIndexIsNoop(t *testing.T) {
	m := testModel(t)
	m.view = viewList
	before := m.selected
	ok, _ := m.jumpTo(999)
	if ok || m.selected != before || m.view != viewList {
		t.Fatalf("jumpTo for unknown index changed state: %+v", m)
	}
}

func TestJumpToSwitchesToCarousel(t *testing.T) {
	m := testModel(t)
	m.view = viewList
	ok, _ := m.jumpTo(3)
	if !ok || m.view != viewCarousel || m.selected != 2 {
		t.Fatalf("jumpTo failed: view=%s selected=%d", m.view, m.selected)
	}
}

func TestStaleEncounterResultDropped(t *testing.T) {
	m := testModel(t)
	// select ivysaur (index 2) and let its encounter data arrive
	m.selected = 1
	nm, _ := m.Update(encountersMsg{index: 2, rows: []dex.EncounterRow{{LocationArea: "route-1", Version: "red"}}})
	m = nm.(model)
	if m.encounters.Empty() {
		t.Fatalf("fresh encounter result should apply")
	}
	// navigate back to bulbasaur, then a stale result for ivysaur resolves
	nm, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = nm.(model)
	if m.current().Index != 1 {
		t.Fatalf("expected selection on index 1, got %d", m.current().Index)
	}
	if !m.encounters.Empty() {
		t.Fatalf("selection change must reset the encounter map")
	}
	nm, _ = m.Update(encountersMsg{index: 2, rows: []dex.EncounterRow{{LocationArea: "route-9", Version: "red"}}})
	m = nm.(model)
	if !m.encounters.Empty() {
		t.Fatalf("stale encounter result overwrote the current selection's map")
	}
}

func TestStaleFlavorResultDropped(t *testing.T) {
	m := testModel(t)
	nm, _ := m.Update(flavorMsg{index: 3, candidates: []dex.FlavorCandidate{{Language: "en", Version: "red", Text: "wrong species"}}})
	m = nm.(model)
	if m.descReady || m.description != "" {
		t.Fatalf("stale flavor result applied: %q", m.description)
	}
}

func TestStaleDetailStillEnriches(t *testing.T) {
	m := testModel(t)
	// detail for a no-longer-selected record still lands on that record
	nm, _ := m.Update(detailMsg{index: 3, detail: dex.Detail{Types: []string{"grass"}, HeightDm: 20, WeightDg: 1000}})
	m = nm.(model)
	pos, _ := m.store.PositionOf(3)
	if !m.store.At(pos).Detailed() {
		t.Fatalf("late detail result was not applied")
	}
	if m.current().Index != 1 || m.current().Detailed() {
		t.Fatalf("detail applied to the wrong record")
	}
}

func TestDetailFetchFailureLeavesStub(t *testing.T) {
	m := testModel(t)
	nm, _ := m.Update(detailMsg{index: 1, err: &pokeapi.FetchError{Status: 500}})
	m = nm.(model)
	if m.current().Detailed() {
		t.Fatalf("failed detail fetch must leave the record a stub")
	}
}

func TestToggleCaughtPersists(t *testing.T) {
	m := testModel(t)
	m.toggleCaught(1)
	if !m.caught[1] {
		t.Fatalf("toggle did not mark index 1")
	}
	if got := m.saves.Load(); !got[1] {
		t.Fatalf("toggle was not flushed to disk: %v", got)
	}
	m.toggleCaught(1)
	if m.caught[1] {
		t.Fatalf("second toggle did not release index 1")
	}
}
