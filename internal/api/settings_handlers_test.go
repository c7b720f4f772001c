package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

func TestGetSettings_Defaults(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/settings", "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	settings := decodeEnvelope[domain.UserSettings](t, resp).Data
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSaveSettings_Roundtrip(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Put("/api/v1/settings", map[string]any{
		"library_due_reminders":    false,
		"series_release_reminders": true,
		"reading_reminders":        true,
		"reminder_days_before":     7,
		"default_view":             "list",
		"theme":                    "dark",
	}, "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/settings", "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	settings := decodeEnvelope[domain.UserSettings](t, resp).Data
	assert.False(t, settings.LibraryDueReminders)
	assert.True(t, settings.ReadingReminders)
	assert.Equal(t, 7, settings.ReminderDaysBefore)
	assert.Equal(t, domain.ViewList, settings.DefaultView)
	assert.Equal(t, domain.ThemeDark, settings.Theme)
}

func TestSaveSettings_InvalidTheme(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Put("/api/v1/settings", map[string]any{
		"library_due_reminders":    true,
		"series_release_reminders": true,
		"reading_reminders":        false,
		"reminder_days_before":     2,
		"default_view":             "grid",
		"theme":                    "neon",
	}, "X-User-ID: user-1")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[any](t, resp)
	assert.Equal(t, "VALIDATION", envelope.Code)
}
