// Package domain contains the core business entities and domain logic for the Bookshelf book tracker.
package domain

import (
	"strings"
	"time"
)

// BookSource identifies where a book in the library came from.
type BookSource string

// Book sources.
const (
	SourceKindle   BookSource = "kindle"
	SourcePhysical BookSource = "physical"
	SourceLibrary  BookSource = "library"
	SourceAudible  BookSource = "audible"
	SourceOther    BookSource = "other"
)

// Valid reports whether the source is one of the known values.
func (s BookSource) Valid() bool {
	switch s {
	case SourceKindle, SourcePhysical, SourceLibrary, SourceAudible, SourceOther:
		return true
	}
	return false
}

// Label returns the display label for a source.
func (s BookSource) Label() string {
	switch s {
	case SourceKindle:
		return "Kindle"
	case SourcePhysical:
		return "Physical"
	case SourceLibrary:
		return "Library"
	case SourceAudible:
		return "Audible"
	case SourceOther:
		return "Other"
	}
	return string(s)
}

// ReadingStatus is the user's reading state for a book.
type ReadingStatus string

// Reading statuses.
const (
	StatusReading    ReadingStatus = "reading"
	StatusCompleted  ReadingStatus = "completed"
	StatusWantToRead ReadingStatus = "wantToRead"
	StatusDNF        ReadingStatus = "dnf"
)

// Valid reports whether the status is one of the known values.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusReading, StatusCompleted, StatusWantToRead, StatusDNF:
		return true
	}
	return false
}

// Label returns the display label for a status.
func (s ReadingStatus) Label() string {
	switch s {
	case StatusReading:
		return "Reading"
	case StatusCompleted:
		return "Completed"
	case StatusWantToRead:
		return "Want to Read"
	case StatusDNF:
		return "Did Not Finish"
	}
	return string(s)
}

// Book represents one book in a user's library.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	CoverURL      string   `json:"cover_url,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Genres        []string `json:"genres"`
	Description   string   `json:"description,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`

	Source      BookSource    `json:"source"`
	Status      ReadingStatus `json:"status"`
	CurrentPage int           `json:"current_page"`
	Rating      int           `json:"rating,omitempty"` // 1-5, 0 = unrated

	DateAdded              time.Time  `json:"date_added"`
	DateStarted            *time.Time `json:"date_started,omitempty"`
	DateCompleted          *time.Time `json:"date_completed,omitempty"`
	DueDate                *time.Time `json:"due_date,omitempty"`
	DueDateReminderEnabled bool       `json:"due_date_reminder_enabled"`

	SeriesName     string  `json:"series_name,omitempty"`
	SeriesPosition float64 `json:"series_position,omitempty"`

	Tags  []string `json:"tags"`
	Notes string   `json:"notes,omitempty"`
}

// FirstAuthor returns the first author, or empty string if there are none.
func (b *Book) FirstAuthor() string {
	if len(b.Authors) == 0 {
		return ""
	}
	return b.Authors[0]
}

// Progress returns reading progress in [0, 1].
// Books with unknown page counts report 0.
func (b *Book) Progress() float64 {
	if b.PageCount <= 0 {
		return 0
	}
	p := float64(b.CurrentPage) / float64(b.PageCount)
	if p > 1 {
		return 1
	}
	return p
}

// SetProgress updates the current page, clamping into [0, pageCount]
// when the page count is known.
func (b *Book) SetProgress(page int) {
	if page < 0 {
		page = 0
	}
	if b.PageCount > 0 && page > b.PageCount {
		page = b.PageCount
	}
	b.CurrentPage = page
}

// SetStatus transitions the book to a new reading status, stamping
// lifecycle timestamps:
//   - reading stamps DateStarted the first time it is entered
//   - completed stamps DateCompleted and snaps progress to the full
//     page count when it is known
//
// Moving away from completed clears DateCompleted so year statistics
// do not count abandoned completions.
func (b *Book) SetStatus(status ReadingStatus, now time.Time) {
	prev := b.Status
	b.Status = status

	switch status {
	case StatusReading:
		if b.DateStarted == nil {
			t := now
			b.DateStarted = &t
		}
	case StatusCompleted:
		t := now
		b.DateCompleted = &t
		if b.DateStarted == nil {
			b.DateStarted = &t
		}
		if b.PageCount > 0 {
			b.CurrentPage = b.PageCount
		}
	case StatusWantToRead, StatusDNF:
		// No timestamps to stamp.
	}

	if prev == StatusCompleted && status != StatusCompleted {
		b.DateCompleted = nil
	}
}

// MatchesTitleOrISBN reports whether the book matches the given title
// (case-insensitive) or non-empty ISBN. Used as a duplicate-entry
// advisory; the repository itself never enforces uniqueness.
func (b *Book) MatchesTitleOrISBN(title, isbn string) bool {
	if strings.EqualFold(b.Title, title) {
		return true
	}
	return isbn != "" && b.ISBN == isbn
}
