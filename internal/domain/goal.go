package domain

import "time"

// ReadingGoal is a yearly book-count target. At most one goal exists
// per year within a user partition; saving again for the same year
// overwrites the earlier record.
type ReadingGoal struct {
	ID          string    `json:"id"`
	Year        int       `json:"year"`
	TargetBooks int       `json:"target_books"`
	CreatedAt   time.Time `json:"created_at"`
}
