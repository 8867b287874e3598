package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/dhulst/pokedex-tui/internal/dex"
)

func (m model) View() string {
	if m.loading {
		return m.styles.muted.Render("Loading catalog...")
	}
	if m.loadErr != "" {
		return m.styles.missing.Render(m.loadErr) + "\n" + m.styles.muted.Render("[r] retry  [q] quit")
	}
	switch m.view {
	case viewList:
		return m.renderList()
	case viewHelp:
		return m.renderHelp()
	default:
		return m.renderCarousel()
	}
}

// Layout rendering -----------------------------------------------------------

func (m *model) renderTopBar() string {
	total := 0
	if m.store != nil {
		total = m.store.Len()
	}
	caught := m.caughtCount()
	pct := 0
	if total > 0 {
		pct = caught * 100 / total
	}
	left := strings.Join([]string{
		"ROTOM-DEX",
		fmt.Sprintf("#%04d/%d", m.current().Index, total),
	}, " • ")
	right := fmt.Sprintf("Caught %d/%d %s", caught, total, bar(pct))
	w := m.width
	if w <= 0 {
		w = 100
	}
	gap := w - len(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.title.Render(left) + strings.Repeat(" ", gap) + m.styles.header.Render(right)
}

func (m *model) renderBottomBar(hints string) string {
	return m.styles.muted.Render(hints)
}

func (m *model) renderCarousel() string {
	w := m.width
	if w <= 0 {
		w = 100
	}
	panelWidth := 46
	if w < 100 {
		panelWidth = w / 2
	}
	mainWidth := w - panelWidth - 1

	top := m.renderTopBar()
	strip := m.renderStrip(mainWidth)
	card := m.renderCard()
	main := lipgloss.NewStyle().Width(mainWidth).Render(strip + "\n\n" + card)
	panel := m.styles.panel.Width(panelWidth).Render(m.panelView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, main, panel)
	bottom := m.renderBottomBar("[←/→] browse  [PgUp/PgDn] jump 10  [g/G] ends  [Space] catch/release  [Tab] list  [t] theme  [?] help  [q] quit")
	return lipgloss.JoinVertical(lipgloss.Left, top, body, bottom)
}

// renderStrip draws the horizontal carousel: two neighbors on each side,
// current selection centered and highlighted.
func (m *model) renderStrip(width int) string {
	var parts []string
	for off := -2; off <= 2; off++ {
		pos := m.selected + off
		if m.store == nil || pos < 0 || pos >= m.store.Len() {
			parts = append(parts, strings.Repeat(" ", 4))
			continue
		}
		sp := m.store.At(pos)
		label := fmt.Sprintf("#%04d %s", sp.Index, dex.TitleSlug(sp.Name))
		if off == 0 {
			mark := "○"
			style := m.styles.missing
			if m.caught[sp.Index] {
				mark = "●"
				style = m.styles.caught
			}
			parts = append(parts, m.styles.cursor.Render("« "+label+" »")+" "+style.Render(mark))
		} else {
			parts = append(parts, m.styles.muted.Render(label))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "   "))
}

func (m *model) renderCard() string {
	sp := m.current()
	if sp.Index == 0 {
		return m.styles.muted.Render("(empty catalog)")
	}
	var b strings.Builder
	b.WriteString(m.styles.header.Render(fmt.Sprintf("#%04d  %s", sp.Index, dex.TitleSlug(sp.Name))) + "\n")
	if m.caught[sp.Index] {
		b.WriteString(m.styles.caught.Render("CAUGHT") + "\n\n")
	} else {
		b.WriteString(m.styles.missing.Render("MISSING") + "\n\n")
	}
	if sp.Detailed() {
		badges := make([]string, 0, len(sp.Types))
		for _, t := range sp.Types {
			badges = append(badges, typeBadge(t, paletteFor(m.theme)))
		}
		b.WriteString("Type     " + strings.Join(badges, " / ") + "\n")
		b.WriteString(fmt.Sprintf("Height   %.1f m\n", float64(sp.HeightDm)/10))
		b.WriteString(fmt.Sprintf("Weight   %.1f kg\n", float64(sp.WeightDg)/10))
	} else {
		b.WriteString(m.styles.muted.Render("(details unavailable)") + "\n")
	}
	b.WriteString("\n" + m.styles.muted.Render("art: "+sp.ArtworkURL) + "\n")
	b.WriteString(m.styles.muted.Render("sprite: "+sp.SpriteURL) + "\n")
	return b.String()
}

func (m *model) panelView() string {
	if m.panelMD == "" {
		return m.styles.muted.Render("...")
	}
	return m.panelMD
}

// rebuildPanel re-renders the markdown detail panel. The panel is derived
// state: recomputed fully per selection, never merged with a previous
// species' data.
func (m *model) rebuildPanel() {
	sp := m.current()
	if sp.Index == 0 {
		m.panelMD = ""
		return
	}
	var b strings.Builder
	b.WriteString("## Dex Entry\n\n")
	switch {
	case m.descErr:
		b.WriteString("_Couldn't fetch the dex entry._\n")
	case !m.descReady:
		b.WriteString("_Fetching..._\n")
	case m.description == "":
		b.WriteString("_No entry available._\n")
	default:
		b.WriteString("> " + m.description + "\n")
	}
	b.WriteString("\n## Locations\n\n")
	switch {
	case !m.encReady:
		b.WriteString("_Fetching..._\n")
	case m.encounters.Empty():
		b.WriteString("_No wild locations known._\n")
	default:
		for _, v := range m.encounters.Versions {
			locs := m.encounters.ByVersion[v]
			labels := make([]string, 0, len(locs))
			for _, l := range locs {
				labels = append(labels, dex.TitleSlug(l))
			}
			b.WriteString(fmt.Sprintf("**%s:** %s\n\n", dex.VersionLabel(v), strings.Join(labels, ", ")))
		}
	}
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(42))
	if err != nil {
		m.panelMD = b.String()
		return
	}
	rendered, err := renderer.Render(b.String())
	if err != nil {
		m.panelMD = b.String()
		return
	}
	m.panelMD = rendered
}

// List view ------------------------------------------------------------------

func (m *model) renderList() string {
	items := m.filtered()
	if m.listCursor > len(items)-1 {
		m.listCursor = len(items) - 1
	}
	if m.listCursor < 0 {
		m.listCursor = 0
	}

	var b strings.Builder
	b.WriteString(m.renderTopBar() + "\n")
	search := "Search> " + m.query
	if m.searching {
		search += "_"
	}
	b.WriteString(m.styles.header.Render(search) + "  " + m.styles.muted.Render("["+m.filter.String()+"]") + "\n\n")

	if len(items) == 0 {
		b.WriteString(m.styles.muted.Render("(nothing matches)") + "\n")
	} else {
		avail := m.height - 7
		if avail < 5 {
			avail = 20
		}
		if m.listCursor < m.listScroll {
			m.listScroll = m.listCursor
		}
		if m.listCursor >= m.listScroll+avail {
			m.listScroll = m.listCursor - avail + 1
		}
		end := m.listScroll + avail
		if end > len(items) {
			end = len(items)
		}
		for i := m.listScroll; i < end; i++ {
			sp := items[i]
			cursor := "  "
			if i == m.listCursor {
				cursor = m.styles.cursor.Render("> ")
			}
			mark := m.styles.missing.Render("○")
			if m.caught[sp.Index] {
				mark = m.styles.caught.Render("●")
			}
			line := fmt.Sprintf("%s%s #%04d %-14s", cursor, mark, sp.Index, dex.TitleSlug(sp.Name))
			if sp.Detailed() {
				line += "  " + m.styles.muted.Render(strings.Join(sp.Types, "/"))
			}
			b.WriteString(line + "\n")
		}
	}
	b.WriteString("\n" + m.renderBottomBar("[/] search  [f] filter  [Space] catch/release  [Enter] open  [Tab] carousel  [Esc] clear  [q] quit"))
	return b.String()
}

func (m *model) renderHelp() string {
	return fmt.Sprintf("ROTOM-DEX %s\n\n"+
		"Track which species you've caught. Progress is saved to %s\n"+
		"after every toggle; the catalog itself is fetched live and never\n"+
		"written to.\n\n"+
		"Carousel: ←/→ or h/l browse, PgUp/PgDn jump, g/G ends,\n"+
		"Space or c toggles caught.\n"+
		"List: ↑/↓ move, / edits the search (name or dex number),\n"+
		"f cycles all/missing/caught, Enter re-centers the carousel.\n"+
		"Anywhere: Tab switches views, t cycles the theme (%s),\n"+
		"? shows this screen, q quits.",
		m.version, m.cfg.SavePath, strings.Join(themeNames(), ", "))
}

func bar(pct int) string {
	width := 10
	fill := int((float64(pct)/100.0)*float64(width) + 0.5)
	if fill > width {
		fill = width
	}
	if fill < 0 {
		fill = 0
	}
	return strings.Repeat("█", fill) + strings.Repeat("·", width-fill)
}
