package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoronova/trackerd/internal/storage"
)

// Run starts the interactive tracker view over the given store and blocks
// until the user quits.
func Run(store storage.Provider) error {
	p := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
