package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nvoronova/trackerd/internal/models"
	"github.com/nvoronova/trackerd/internal/provider"
	"github.com/nvoronova/trackerd/internal/storage"
	"github.com/nvoronova/trackerd/internal/visibility"
)

type TrackerFormModel struct {
	Name     string
	Category string
	Schedule string
	Emoji    string
}

type Model struct {
	store    storage.Provider
	provider *provider.DataProvider

	selectedDate time.Time
	filter       models.Filter
	search       textinput.Model
	searching    bool

	// result is the current visible projection; cursor indexes its trackers
	// in display order across categories.
	result visibility.Result
	cursor int

	form        *huh.Form
	trackerForm *TrackerFormModel

	keys      KeyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
	formError string
}

func NewModel(store storage.Provider) Model {
	search := textinput.New()
	search.Placeholder = "search trackers"
	search.CharLimit = 64

	m := Model{
		store:        store,
		provider:     provider.New(store),
		selectedDate: time.Now(),
		filter:       models.FilterAll,
		search:       search,
		keys:         DefaultKeyMap(),
		help:         help.New(),
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// recompute rebuilds the visible projection from the current date, filter
// and search, then clamps the cursor to the new tracker count.
func (m *Model) recompute() {
	m.result = visibility.Compute(visibility.Input{
		AllCategories: m.provider.GetAllCategories(),
		SelectedDate:  m.selectedDate,
		Filter:        m.filter,
		SearchText:    m.search.Value(),
		CompletedIDs:  m.store.CompletedTrackerIDs(m.selectedDate),
	})

	count := len(m.visibleTrackers())
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// visibleTrackers flattens the visible categories into display order.
func (m *Model) visibleTrackers() []models.Tracker {
	var out []models.Tracker
	for _, category := range m.result.Categories {
		out = append(out, category.Trackers...)
	}
	return out
}

// trackerUnderCursor returns the selected tracker, if any.
func (m *Model) trackerUnderCursor() (models.Tracker, bool) {
	trackers := m.visibleTrackers()
	if m.cursor < 0 || m.cursor >= len(trackers) {
		return models.Tracker{}, false
	}
	return trackers[m.cursor], true
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.PrevDay, m.keys.NextDay, m.keys.Toggle, m.keys.Filter, m.keys.Search, m.keys.Add, m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down, m.keys.PrevDay, m.keys.NextDay},
		{m.keys.Toggle, m.keys.Filter, m.keys.Search, m.keys.Add, m.keys.Delete},
		{m.keys.Help, m.keys.Quit},
	}
}
