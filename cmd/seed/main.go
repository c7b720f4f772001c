// Package main provides a tool to seed the database with sample library data.
//
// This writes a handful of books in various reading states, a goal for
// the current year, preferences, and a short swipe history into one
// partition so stats and filter views have something to show.
//
// Usage:
//
//	DATA_PATH=~/Bookshelf/data go run ./cmd/seed
//	DATA_PATH=~/Bookshelf/data go run ./cmd/seed --user someone
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/id"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

var userID = flag.String("user", "", "User ID to seed; empty seeds the guest partition")

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/Bookshelf/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	p := store.PartitionFor(*userID)
	now := time.Now().UTC()

	books := sampleBooks(now)
	for _, book := range books {
		if err := s.AddBook(ctx, p, book); err != nil {
			log.Fatalf("Failed to add %q: %v", book.Title, err)
		}
		fmt.Printf("  added %-28s [%s]\n", book.Title, book.Status.Label())
	}

	goal := domain.ReadingGoal{
		ID:          id.MustGenerate("goal"),
		Year:        now.Year(),
		TargetBooks: 24,
		CreatedAt:   now,
	}
	if err := s.SaveGoal(ctx, p, goal); err != nil {
		log.Fatalf("Failed to save goal: %v", err)
	}
	fmt.Printf("  goal: %d books in %d\n", goal.TargetBooks, goal.Year)

	settings := domain.DefaultSettings()
	settings.Theme = domain.ThemeDark
	if err := s.SaveSettings(ctx, p, settings); err != nil {
		log.Fatalf("Failed to save settings: %v", err)
	}

	swipes := []domain.SwipedBook{
		{ID: "seed-rec-1", Title: "The Name of the Wind", Liked: true, SwipedAt: now.Add(-48 * time.Hour)},
		{ID: "seed-rec-2", Title: "Wool", Liked: false, SwipedAt: now.Add(-24 * time.Hour)},
	}
	for _, swipe := range swipes {
		if err := s.RecordSwipe(ctx, p, swipe); err != nil {
			log.Fatalf("Failed to record swipe: %v", err)
		}
	}

	fmt.Printf("\nSeeded %d books, 1 goal, settings and %d swipes into partition %q\n",
		len(books), len(swipes), p.UserID())
}

// sampleBooks builds a small library spanning every reading state.
func sampleBooks(now time.Time) []domain.Book {
	completed := now.AddDate(0, -2, 0)
	started := now.AddDate(0, -3, 0)
	reading := now.AddDate(0, 0, -10)
	due := now.AddDate(0, 0, 14)

	return []domain.Book{
		{
			ID:             id.MustGenerate("book"),
			Title:          "The Fifth Season",
			Authors:        []string{"N. K. Jemisin"},
			ISBN:           "9780316229296",
			PageCount:      468,
			Genres:         []string{"Fantasy"},
			Source:         domain.SourceKindle,
			Status:         domain.StatusCompleted,
			CurrentPage:    468,
			Rating:         5,
			DateAdded:      now.AddDate(0, -4, 0),
			DateStarted:    &started,
			DateCompleted:  &completed,
			SeriesName:     "The Broken Earth",
			SeriesPosition: 1,
		},
		{
			ID:             id.MustGenerate("book"),
			Title:          "The Obelisk Gate",
			Authors:        []string{"N. K. Jemisin"},
			ISBN:           "9780316229265",
			PageCount:      410,
			Genres:         []string{"Fantasy"},
			Source:         domain.SourceKindle,
			Status:         domain.StatusReading,
			CurrentPage:    120,
			DateAdded:      now.AddDate(0, -1, 0),
			DateStarted:    &reading,
			SeriesName:     "The Broken Earth",
			SeriesPosition: 2,
		},
		{
			ID:                     id.MustGenerate("book"),
			Title:                  "Braiding Sweetgrass",
			Authors:                []string{"Robin Wall Kimmerer"},
			ISBN:                   "9781571313560",
			PageCount:              408,
			Genres:                 []string{"Nature", "Essays"},
			Source:                 domain.SourceLibrary,
			Status:                 domain.StatusWantToRead,
			DateAdded:              now.AddDate(0, 0, -5),
			DueDate:                &due,
			DueDateReminderEnabled: true,
		},
		{
			ID:          id.MustGenerate("book"),
			Title:       "Gideon the Ninth",
			Authors:     []string{"Tamsyn Muir"},
			PageCount:   448,
			Genres:      []string{"Science Fiction"},
			Source:      domain.SourcePhysical,
			Status:      domain.StatusDNF,
			CurrentPage: 90,
			DateAdded:   now.AddDate(0, -6, 0),
			Notes:       "shelved for later",
		},
	}
}
