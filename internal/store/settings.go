package store

import (
	"context"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// GetSettings returns the partition's settings merged over defaults.
// Fields absent from the stored record keep their default values, so
// settings added in newer releases surface without a migration.
func (s *Store) GetSettings(ctx context.Context, p Partition) (*domain.UserSettings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings := domain.DefaultSettings()
	found, err := s.readDocument(p.key(baseSettings), &settings)
	if err != nil {
		return nil, err
	}
	if !found {
		// A corrupt record may have partially decoded into settings
		// before being discarded; start over from clean defaults.
		settings = domain.DefaultSettings()
	}
	return &settings, nil
}

// SaveSettings stores the partition's settings.
func (s *Store) SaveSettings(ctx context.Context, p Partition, settings domain.UserSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.writeDocument(p.key(baseSettings), settings)
}
