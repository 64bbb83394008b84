package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/nvoronova/trackerd/internal/cli"
	"github.com/nvoronova/trackerd/internal/models"
)

var errEmptyName = errors.New("name cannot be empty")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}
	return m.updateBrowsing(msg)
}

func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visibleTrackers())-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.PrevDay):
		m.selectedDate = m.selectedDate.AddDate(0, 0, -1)
		m.recompute()

	case key.Matches(keyMsg, m.keys.NextDay):
		m.selectedDate = m.selectedDate.AddDate(0, 0, 1)
		m.recompute()

	case key.Matches(keyMsg, m.keys.Filter):
		m.cycleFilter()
		m.recompute()

	case key.Matches(keyMsg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(keyMsg, m.keys.Toggle):
		if tracker, ok := m.trackerUnderCursor(); ok {
			if _, err := m.provider.ToggleRecord(tracker, m.selectedDate); err != nil {
				m.formError = err.Error()
			}
			m.recompute()
		}

	case key.Matches(keyMsg, m.keys.Add):
		m.openTrackerForm()
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Delete):
		if tracker, ok := m.trackerUnderCursor(); ok {
			if err := m.provider.Delete(tracker.ID); err != nil {
				m.formError = err.Error()
			}
			m.recompute()
		}

	case key.Matches(keyMsg, m.keys.Escape):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.recompute()
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.recompute()
			return m, nil
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.recompute()
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.trackerForm = nil
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		schedule, err := cli.ParseSchedule(m.trackerForm.Schedule)
		if err != nil {
			m.formError = err.Error()
			m.form = nil
			m.trackerForm = nil
			return m, tea.Batch(cmds...)
		}

		tracker := models.Tracker{
			ID:       uuid.New().String(),
			Name:     strings.TrimSpace(m.trackerForm.Name),
			Emoji:    strings.TrimSpace(m.trackerForm.Emoji),
			Color:    models.DefaultColor,
			Schedule: schedule,
		}
		category := strings.TrimSpace(m.trackerForm.Category)

		if err := m.provider.Add(tracker, category); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		m.form = nil
		m.trackerForm = nil
		m.recompute()

	case huh.StateAborted:
		m.form = nil
		m.trackerForm = nil
	}

	return m, tea.Batch(cmds...)
}

// cycleFilter advances to the next filter. Entering the "today" filter
// snaps the view back to the current day.
func (m *Model) cycleFilter() {
	for i, f := range models.AllFilters {
		if f == m.filter {
			m.filter = models.AllFilters[(i+1)%len(models.AllFilters)]
			break
		}
	}
	if m.filter == models.FilterToday {
		m.selectedDate = time.Now()
	}
}

func (m *Model) openTrackerForm() {
	m.trackerForm = &TrackerFormModel{
		Category: "General",
		Schedule: "daily",
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				CharLimit(38).
				Value(&m.trackerForm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Value(&m.trackerForm.Category),
			huh.NewInput().
				Title("Schedule").
				Description("Comma-separated weekdays (e.g. mon,wed,fri) or 'daily'").
				Value(&m.trackerForm.Schedule),
			huh.NewInput().
				Title("Emoji").
				Value(&m.trackerForm.Emoji),
		),
	)
}
