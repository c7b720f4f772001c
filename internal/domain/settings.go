package domain

// ViewMode is the library display layout.
type ViewMode string

// View modes.
const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Theme is the app color scheme preference.
type Theme string

// Themes.
const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// UserSettings holds per-user preferences. It is a singleton record per
// partition; reads merge stored JSON over DefaultSettings so fields
// introduced later pick up their default without a migration.
type UserSettings struct {
	LibraryDueReminders    bool     `json:"library_due_reminders"`
	SeriesReleaseReminders bool     `json:"series_release_reminders"`
	ReadingReminders       bool     `json:"reading_reminders"`
	ReminderDaysBefore     int      `json:"reminder_days_before"`
	DefaultView            ViewMode `json:"default_view"`
	Theme                  Theme    `json:"theme"`
}

// DefaultSettings returns the documented default preference set.
func DefaultSettings() UserSettings {
	return UserSettings{
		LibraryDueReminders:    true,
		SeriesReleaseReminders: true,
		ReadingReminders:       false,
		ReminderDaysBefore:     2,
		DefaultView:            ViewGrid,
		Theme:                  ThemeSystem,
	}
}
