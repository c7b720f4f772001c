package domain

import "slices"

// GenreCount is one entry of the top-genre breakdown.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// SeriesProgress tracks how far through a series the user is.
type SeriesProgress struct {
	Series string `json:"series"`
	Read   int    `json:"read"`
	Total  int    `json:"total"`
}

// YearStats is the derived reading statistics for one calendar year.
type YearStats struct {
	Year             int                `json:"year"`
	BooksRead        int                `json:"books_read"`
	TotalPages       int                `json:"total_pages"`
	CurrentlyReading int                `json:"currently_reading"`
	MonthCounts      [12]int            `json:"month_counts"`
	TopGenres        []GenreCount       `json:"top_genres"`
	SourceCounts     map[BookSource]int `json:"source_counts"`
	SeriesProgress   []SeriesProgress   `json:"series_progress"`
}

// maxTopGenres caps the genre breakdown.
const maxTopGenres = 5

// BuildYearStats derives reading statistics from a book collection for
// the given calendar year. It is a pure function: same input, same
// output, no I/O. Ordering is deterministic - genre ties keep
// first-encountered order, series keep collection order.
func BuildYearStats(books []Book, year int) YearStats {
	stats := YearStats{
		Year:         year,
		SourceCounts: make(map[BookSource]int),
	}

	genreCounts := make(map[string]int)
	var genreOrder []string

	seriesIndex := make(map[string]int)

	for i := range books {
		b := &books[i]

		if b.Status == StatusReading {
			stats.CurrentlyReading++
		}

		if b.SeriesName != "" {
			idx, ok := seriesIndex[b.SeriesName]
			if !ok {
				idx = len(stats.SeriesProgress)
				seriesIndex[b.SeriesName] = idx
				stats.SeriesProgress = append(stats.SeriesProgress, SeriesProgress{Series: b.SeriesName})
			}
			stats.SeriesProgress[idx].Total++
			if b.Status == StatusCompleted {
				stats.SeriesProgress[idx].Read++
			}
		}

		// Everything below is year-scoped.
		if b.DateCompleted == nil || b.DateCompleted.Year() != year {
			continue
		}

		stats.BooksRead++
		stats.TotalPages += b.PageCount
		stats.MonthCounts[int(b.DateCompleted.Month())-1]++
		stats.SourceCounts[b.Source]++

		genre := "Unknown"
		if len(b.Genres) > 0 && b.Genres[0] != "" {
			genre = b.Genres[0]
		}
		if _, seen := genreCounts[genre]; !seen {
			genreOrder = append(genreOrder, genre)
		}
		genreCounts[genre]++
	}

	// Single-book "series" are noise, drop them.
	stats.SeriesProgress = slices.DeleteFunc(stats.SeriesProgress, func(sp SeriesProgress) bool {
		return sp.Total <= 1
	})

	stats.TopGenres = make([]GenreCount, 0, len(genreOrder))
	for _, g := range genreOrder {
		stats.TopGenres = append(stats.TopGenres, GenreCount{Genre: g, Count: genreCounts[g]})
	}
	slices.SortStableFunc(stats.TopGenres, func(a, b GenreCount) int {
		return b.Count - a.Count
	})
	if len(stats.TopGenres) > maxTopGenres {
		stats.TopGenres = stats.TopGenres[:maxTopGenres]
	}

	return stats
}

// GoalProgress is the state of a yearly goal against derived stats.
type GoalProgress struct {
	Goal     *ReadingGoal `json:"goal,omitempty"`
	Progress float64      `json:"progress"`
	Achieved bool         `json:"achieved"`
}

// BuildGoalProgress computes goal completion for a year's stats.
// With no goal set, progress is 0 and the goal is never achieved.
func BuildGoalProgress(stats YearStats, goal *ReadingGoal) GoalProgress {
	if goal == nil || goal.TargetBooks <= 0 {
		return GoalProgress{}
	}
	p := float64(stats.BooksRead) / float64(goal.TargetBooks)
	return GoalProgress{
		Goal:     goal,
		Progress: p,
		Achieved: p >= 1.0,
	}
}
