package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhulst/pokedex-tui/internal/pokeapi"
	"github.com/dhulst/pokedex-tui/internal/save"
	"github.com/dhulst/pokedex-tui/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, client *pokeapi.Client, saves *save.Store, cfg util.Config, version string) error {
	m := initialModel(ctx, client, saves, cfg, version)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
