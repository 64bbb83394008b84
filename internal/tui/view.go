package tui

import (
	"fmt"
	"strings"

	"github.com/nvoronova/trackerd/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder

	header := fmt.Sprintf("%s  ·  filter: %s", models.DayKey(m.selectedDate), m.filter)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.result.EmptyState {
	case models.EmptyStateEmptyList:
		b.WriteString(mutedStyle.Render("Nothing scheduled for this day."))
		b.WriteString("\n")
	case models.EmptyStateNoResults:
		b.WriteString(mutedStyle.Render("Nothing found."))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderTrackers())
	}

	if m.formError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.formError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) renderTrackers() string {
	completed := m.store.CompletedTrackerIDs(m.selectedDate)

	var b strings.Builder
	pos := 0
	for _, category := range m.result.Categories {
		b.WriteString(categoryStyle.Render(category.Title))
		b.WriteString("\n")

		for _, tracker := range category.Trackers {
			mark := "[ ]"
			style := mutedStyle
			if completed[tracker.ID] {
				mark = "[x]"
				style = completedStyle
			}

			line := fmt.Sprintf("%s %s %s", mark, tracker.Emoji, tracker.Name)
			if pos == m.cursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + style.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			pos++
		}
	}
	return b.String()
}
