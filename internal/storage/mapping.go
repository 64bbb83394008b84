package storage

import (
	"database/sql"
	"encoding/json"

	"github.com/nvoronova/trackerd/internal/logger"
	"github.com/nvoronova/trackerd/internal/models"
)

// MakeTracker maps a raw persisted row into a domain Tracker. Persisted data
// is assumed well-formed but defensively defaulted: a missing name or emoji
// becomes the empty string, a missing color becomes black, and an absent or
// unreadable schedule blob becomes the empty schedule. Every backend maps
// its rows through here.
func MakeTracker(id string, name, emoji sql.NullString, colorBlob, scheduleBlob []byte) models.Tracker {
	color := models.DefaultColor
	if len(colorBlob) > 0 {
		color = models.Color(colorBlob)
	}
	return models.Tracker{
		ID:       id,
		Name:     name.String,
		Emoji:    emoji.String,
		Color:    color,
		Schedule: DecodeSchedule(scheduleBlob),
	}
}

// EncodeSchedule serializes a schedule as the persisted JSON blob of
// lowercase weekday names, in canonical order and without duplicates.
func EncodeSchedule(schedule []models.Weekday) []byte {
	data, err := json.Marshal(models.SortSchedule(schedule))
	if err != nil {
		// Marshaling a string slice cannot fail; keep the row writable anyway.
		return []byte("[]")
	}
	return data
}

// DecodeSchedule parses a persisted schedule blob, defaulting to the empty
// schedule when the blob is absent or unreadable.
func DecodeSchedule(blob []byte) []models.Weekday {
	if len(blob) == 0 {
		return []models.Weekday{}
	}
	var schedule []models.Weekday
	if err := json.Unmarshal(blob, &schedule); err != nil {
		logger.Warn("Failed to decode schedule blob, defaulting to empty", "error", err)
		return []models.Weekday{}
	}
	return schedule
}
