package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhulst/pokedex-tui/internal/dex"
	"github.com/dhulst/pokedex-tui/internal/pokeapi"
	"github.com/dhulst/pokedex-tui/internal/save"
	"github.com/dhulst/pokedex-tui/internal/util"
)

const (
	viewCarousel = "carousel"
	viewList     = "list"
	viewHelp     = "help"
)

type model struct {
	ctx     context.Context
	client  *pokeapi.Client
	saves   *save.Store
	cfg     util.Config
	version string

	store   *dex.Store
	caught  map[int]bool
	loading bool
	loadErr string

	selected int // position into the store, not a species index
	view     string

	// list view
	listCursor int
	listScroll int
	query      string
	searching  bool
	filter     dex.FilterMode

	// detail panel, recomputed from scratch on every selection change
	description string
	descErr     bool
	descReady   bool
	encounters  dex.EncounterMap
	encReady    bool
	panelMD     string

	theme  string
	styles styleSet
	width  int
	height int
}

// Messages carry the species index the request was issued for so stale
// results can be recognized on arrival.
type speciesListMsg struct {
	items []dex.Species
	err   error
}

type detailMsg struct {
	index  int
	detail dex.Detail
	err    error
}

type flavorMsg struct {
	index      int
	candidates []dex.FlavorCandidate
	err        error
}

type encountersMsg struct {
	index int
	rows  []dex.EncounterRow
	err   error
}

func initialModel(ctx context.Context, client *pokeapi.Client, saves *save.Store, cfg util.Config, version string) model {
	m := model{
		ctx:     ctx,
		client:  client,
		saves:   saves,
		cfg:     cfg,
		version: version,
		caught:  saves.Load(),
		loading: true,
		view:    viewCarousel,
		theme:   cfg.Theme,
	}
	m.styles = makeStyles(paletteFor(m.theme))
	return m
}

// Commands --------------------------------------------------------------------

func (m model) loadSpeciesCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListSpecies(m.ctx, m.cfg.Limit)
		return speciesListMsg{items: items, err: err}
	}
}

func (m model) detailCmd(index int) tea.Cmd {
	return func() tea.Msg {
		d, err := m.client.GetDetail(m.ctx, index)
		return detailMsg{index: index, detail: d, err: err}
	}
}

func (m model) flavorCmd(index int) tea.Cmd {
	return func() tea.Msg {
		cands, err := m.client.GetFlavor(m.ctx, index)
		return flavorMsg{index: index, candidates: cands, err: err}
	}
}

func (m model) encountersCmd(index int) tea.Cmd {
	return func() tea.Msg {
		rows, err := m.client.GetEncounters(m.ctx, index)
		return encountersMsg{index: index, rows: rows, err: err}
	}
}

// selectionCmds resets the derived panel and issues the fetches for the
// current selection. Detail is only requested while the record is a stub.
func (m *model) selectionCmds() tea.Cmd {
	sp := m.current()
	if sp.Index == 0 {
		return nil
	}
	m.description = ""
	m.descErr = false
	m.descReady = false
	m.encounters = dex.EncounterMap{}
	m.encReady = false
	m.panelMD = ""
	cmds := []tea.Cmd{m.flavorCmd(sp.Index), m.encountersCmd(sp.Index)}
	if !sp.Detailed() {
		cmds = append(cmds, m.detailCmd(sp.Index))
	}
	return tea.Batch(cmds...)
}

// Selection helpers -----------------------------------------------------------

func (m *model) current() dex.Species {
	if m.store == nil {
		return dex.Species{}
	}
	return m.store.At(m.selected)
}

// moveSelection clamps to [0, n-1]; no wraparound.
func (m *model) moveSelection(delta int) bool {
	if m.store == nil || m.store.Len() == 0 {
		return false
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next > m.store.Len()-1 {
		next = m.store.Len() - 1
	}
	if next == m.selected {
		return false
	}
	m.selected = next
	return true
}

// jumpTo switches to the carousel centered on a species index; unknown
// indices are a no-op.
func (m *model) jumpTo(index int) (bool, tea.Cmd) {
	if m.store == nil {
		return false, nil
	}
	pos, ok := m.store.PositionOf(index)
	if !ok {
		return false, nil
	}
	m.view = viewCarousel
	if pos == m.selected {
		return true, nil
	}
	m.selected = pos
	return true, m.selectionCmds()
}

// toggleCaught flips membership and flushes immediately. A failed write is
// dropped; the in-memory set keeps the toggle for the session.
func (m *model) toggleCaught(index int) {
	if index <= 0 {
		return
	}
	m.caught = save.Toggle(m.caught, index)
	_ = m.saves.Save(m.caught)
}

func (m *model) caughtCount() int {
	n := 0
	for _, ok := range m.caught {
		if ok {
			n++
		}
	}
	return n
}

func (m *model) filtered() []dex.Species {
	if m.store == nil {
		return nil
	}
	return dex.FilterSpecies(m.store.All(), m.query, m.filter, m.caught)
}

// tea.Model implementation ---------------------------------------------------

func (m model) Init() tea.Cmd { return m.loadSpeciesCmd() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildPanel()
		return m, nil

	case speciesListMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = "couldn't load the catalog — check your connection and retry with r"
			return m, nil
		}
		m.loadErr = ""
		m.store = dex.NewStore(msg.items)
		m.selected = 0
		return m, m.selectionCmds()

	case detailMsg:
		// applied even when the selection moved on: enrichment is idempotent
		// and tied to the record's own index. Failure leaves the stub as-is.
		if msg.err == nil && m.store != nil {
			m.store.Enrich(msg.index, msg.detail)
			if msg.index == m.current().Index {
				m.rebuildPanel()
			}
		}
		return m, nil

	case flavorMsg:
		if msg.index != m.current().Index {
			return m, nil // stale; selection moved on
		}
		m.descReady = true
		if msg.err != nil {
			m.descErr = true
		} else {
			m.description = dex.SelectDescription(msg.candidates)
		}
		m.rebuildPanel()
		return m, nil

	case encountersMsg:
		if msg.index != m.current().Index {
			return m, nil // stale; must not overwrite the current panel
		}
		m.encReady = true
		if msg.err != nil {
			m.encounters = dex.EncounterMap{}
		} else {
			m.encounters = dex.NormalizeEncounters(msg.rows)
		}
		m.rebuildPanel()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m model) handleKey(k string) (tea.Model, tea.Cmd) {
	if k == "ctrl+c" {
		return m, tea.Quit
	}

	// search capture has priority over every other binding
	if m.view == viewList && m.searching {
		switch k {
		case "enter", "esc":
			m.searching = false
		case "backspace":
			if len(m.query) > 0 {
				m.query = m.query[:len(m.query)-1]
				m.listCursor = 0
				m.listScroll = 0
			}
		default:
			if isRuneInput(k) {
				m.query += k
				m.listCursor = 0
				m.listScroll = 0
			}
		}
		return m, nil
	}

	if k == "q" {
		if m.view == viewHelp {
			m.view = viewCarousel
			return m, nil
		}
		return m, tea.Quit
	}

	if m.loadErr != "" {
		if k == "r" {
			m.loading = true
			m.loadErr = ""
			return m, m.loadSpeciesCmd()
		}
		return m, nil
	}

	switch k {
	case "?":
		if m.view == viewHelp {
			m.view = viewCarousel
		} else {
			m.view = viewHelp
		}
		return m, nil
	case "tab":
		if m.view == viewList {
			m.view = viewCarousel
		} else {
			m.view = viewList
		}
		return m, nil
	case "t":
		m.theme = nextThemeName(m.theme, 1)
		m.styles = makeStyles(paletteFor(m.theme))
		m.rebuildPanel()
		return m, nil
	}

	switch m.view {
	case viewCarousel:
		return m.handleCarouselKey(k)
	case viewList:
		return m.handleListKey(k)
	case viewHelp:
		if k == "esc" {
			m.view = viewCarousel
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleCarouselKey(k string) (tea.Model, tea.Cmd) {
	if m.store == nil || m.store.Len() == 0 {
		return m, nil
	}
	switch k {
	case "left", "h":
		if m.moveSelection(-1) {
			return m, m.selectionCmds()
		}
	case "right", "l":
		if m.moveSelection(1) {
			return m, m.selectionCmds()
		}
	case "pgup":
		if m.moveSelection(-10) {
			return m, m.selectionCmds()
		}
	case "pgdown":
		if m.moveSelection(10) {
			return m, m.selectionCmds()
		}
	case "g", "home":
		if m.moveSelection(-m.store.Len()) {
			return m, m.selectionCmds()
		}
	case "G", "end":
		if m.moveSelection(m.store.Len()) {
			return m, m.selectionCmds()
		}
	case " ", "c":
		m.toggleCaught(m.current().Index)
	}
	return m, nil
}

func (m model) handleListKey(k string) (tea.Model, tea.Cmd) {
	items := m.filtered()
	if m.listCursor > len(items)-1 {
		m.listCursor = len(items) - 1
	}
	if m.listCursor < 0 {
		m.listCursor = 0
	}
	switch k {
	case "up", "k":
		if m.listCursor > 0 {
			m.listCursor--
		}
	case "down", "j":
		if m.listCursor < len(items)-1 {
			m.listCursor++
		}
	case "pgup":
		m.listCursor -= 12
		if m.listCursor < 0 {
			m.listCursor = 0
		}
	case "pgdown":
		m.listCursor += 12
		if m.listCursor > len(items)-1 {
			m.listCursor = len(items) - 1
		}
	case "/":
		m.searching = true
	case "f":
		m.filter = m.filter.Next()
		m.listCursor = 0
		m.listScroll = 0
	case "esc":
		if m.query != "" {
			m.query = ""
			m.listCursor = 0
			m.listScroll = 0
		}
	case " ", "c":
		if len(items) > 0 {
			m.toggleCaught(items[m.listCursor].Index)
		}
	case "enter":
		if len(items) > 0 {
			_, cmd := m.jumpTo(items[m.listCursor].Index)
			return m, cmd
		}
	}
	return m, nil
}

func isRuneInput(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && runes[0] >= 32 && runes[0] < 127
}
