package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

func (s *Server) registerSettingsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getSettings",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings",
		Summary:     "Get settings",
		Description: "Returns the caller's preferences merged over defaults",
		Tags:        []string{"Settings"},
	}, s.handleGetSettings)

	huma.Register(s.api, huma.Operation{
		OperationID: "saveSettings",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings",
		Summary:     "Save settings",
		Description: "Replaces the caller's preferences",
		Tags:        []string{"Settings"},
	}, s.handleSaveSettings)
}

// === DTOs ===

// SettingsRequest is the request body for saving settings.
type SettingsRequest struct {
	LibraryDueReminders    bool   `json:"library_due_reminders" doc:"Remind before library books are due"`
	SeriesReleaseReminders bool   `json:"series_release_reminders" doc:"Remind about new series releases"`
	ReadingReminders       bool   `json:"reading_reminders" doc:"Daily reading nudges"`
	ReminderDaysBefore     int    `json:"reminder_days_before" validate:"gte=0,lte=30" doc:"Days of notice before a due date"`
	DefaultView            string `json:"default_view" validate:"oneof=grid list" doc:"Library layout"`
	Theme                  string `json:"theme" validate:"oneof=system light dark" doc:"Color scheme"`
}

// SaveSettingsInput wraps the settings request for Huma.
type SaveSettingsInput struct {
	UserID string `header:"X-User-ID"`
	Body   SettingsRequest
}

// SettingsOutput wraps the settings for Huma.
type SettingsOutput struct {
	Body domain.UserSettings
}

// === Handlers ===

func (s *Server) handleGetSettings(ctx context.Context, input *PartitionInput) (*SettingsOutput, error) {
	settings, err := s.store.GetSettings(ctx, partitionFor(input.UserID))
	if err != nil {
		return nil, err
	}
	return &SettingsOutput{Body: *settings}, nil
}

func (s *Server) handleSaveSettings(ctx context.Context, input *SaveSettingsInput) (*SettingsOutput, error) {
	if err := s.validate.Validate(input.Body); err != nil {
		return nil, err
	}

	settings := domain.UserSettings{
		LibraryDueReminders:    input.Body.LibraryDueReminders,
		SeriesReleaseReminders: input.Body.SeriesReleaseReminders,
		ReadingReminders:       input.Body.ReadingReminders,
		ReminderDaysBefore:     input.Body.ReminderDaysBefore,
		DefaultView:            domain.ViewMode(input.Body.DefaultView),
		Theme:                  domain.Theme(input.Body.Theme),
	}

	if err := s.store.SaveSettings(ctx, partitionFor(input.UserID), settings); err != nil {
		return nil, err
	}
	return &SettingsOutput{Body: settings}, nil
}
