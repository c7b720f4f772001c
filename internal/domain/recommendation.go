package domain

import "time"

// RecommendedBook is one suggestion returned by the recommendation
// service, identified by a stable id so a user judges it at most once.
type RecommendedBook struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	CoverURL string   `json:"cover_url,omitempty"`
	Synopsis string   `json:"synopsis"`
	Genres   []string `json:"genres,omitempty"`
}

// SwipedBook records a user's accept/reject decision on one
// recommendation. Re-swiping the same id replaces the earlier record,
// so the most recent direction always wins.
type SwipedBook struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Liked    bool      `json:"liked"`
	SwipedAt time.Time `json:"swiped_at"`
}
