package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedOn(t *testing.T, date string, pages int) Book {
	t.Helper()
	ts, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return Book{
		Status:        StatusCompleted,
		PageCount:     pages,
		DateCompleted: &ts,
	}
}

func TestBuildYearStats_YearPartition(t *testing.T) {
	books := []Book{
		completedOn(t, "2024-03-01", 300),
		completedOn(t, "2024-11-15", 200),
		completedOn(t, "2023-01-01", 100),
	}

	stats := BuildYearStats(books, 2024)

	assert.Equal(t, 2, stats.BooksRead)
	assert.Equal(t, 500, stats.TotalPages)
	assert.Equal(t, 1, stats.MonthCounts[2], "March is zero-indexed month 2")
	assert.Equal(t, 1, stats.MonthCounts[10], "November is zero-indexed month 10")
	assert.Equal(t, 0, stats.MonthCounts[0])
}

func TestBuildYearStats_CurrentlyReadingIgnoresYear(t *testing.T) {
	books := []Book{
		{Status: StatusReading},
		{Status: StatusReading},
		completedOn(t, "2020-06-01", 50),
	}

	stats := BuildYearStats(books, 2024)

	assert.Equal(t, 0, stats.BooksRead)
	assert.Equal(t, 2, stats.CurrentlyReading)
}

func TestBuildYearStats_TopGenres(t *testing.T) {
	mk := func(genre string) Book {
		b := completedOn(t, "2024-05-05", 10)
		if genre != "" {
			b.Genres = []string{genre, "Secondary"}
		}
		return b
	}

	books := []Book{
		mk("Fantasy"), mk("Fantasy"), mk("Fantasy"),
		mk("Sci-Fi"), mk("Sci-Fi"),
		mk("Horror"), mk("Mystery"), mk("Romance"), mk("History"),
		mk(""), // counts under "Unknown"
	}

	stats := BuildYearStats(books, 2024)

	require.Len(t, stats.TopGenres, 5)
	assert.Equal(t, GenreCount{Genre: "Fantasy", Count: 3}, stats.TopGenres[0])
	assert.Equal(t, GenreCount{Genre: "Sci-Fi", Count: 2}, stats.TopGenres[1])
	// Ties keep first-encountered order.
	assert.Equal(t, "Horror", stats.TopGenres[2].Genre)
	assert.Equal(t, "Mystery", stats.TopGenres[3].Genre)
	assert.Equal(t, "Romance", stats.TopGenres[4].Genre)
}

func TestBuildYearStats_SourceCounts(t *testing.T) {
	b1 := completedOn(t, "2024-02-02", 10)
	b1.Source = SourceKindle
	b2 := completedOn(t, "2024-03-03", 10)
	b2.Source = SourceKindle
	b3 := completedOn(t, "2024-04-04", 10)
	b3.Source = SourcePhysical
	old := completedOn(t, "2019-04-04", 10)
	old.Source = SourceAudible

	stats := BuildYearStats([]Book{b1, b2, b3, old}, 2024)

	assert.Equal(t, 2, stats.SourceCounts[SourceKindle])
	assert.Equal(t, 1, stats.SourceCounts[SourcePhysical])
	assert.Zero(t, stats.SourceCounts[SourceAudible], "other years excluded")
}

func TestBuildYearStats_SeriesProgress(t *testing.T) {
	books := []Book{
		{SeriesName: "Discworld", Status: StatusCompleted},
		{SeriesName: "Discworld", Status: StatusCompleted},
		{SeriesName: "Discworld", Status: StatusReading},
		{SeriesName: "Standalone-ish", Status: StatusCompleted}, // total 1, dropped
		{SeriesName: "Dune", Status: StatusWantToRead},
		{SeriesName: "Dune", Status: StatusWantToRead},
	}

	stats := BuildYearStats(books, 2024)

	require.Len(t, stats.SeriesProgress, 2)
	assert.Equal(t, SeriesProgress{Series: "Discworld", Read: 2, Total: 3}, stats.SeriesProgress[0])
	assert.Equal(t, SeriesProgress{Series: "Dune", Read: 0, Total: 2}, stats.SeriesProgress[1])
}

func TestBuildYearStats_Deterministic(t *testing.T) {
	books := []Book{
		completedOn(t, "2024-01-01", 100),
		completedOn(t, "2024-02-01", 200),
		{SeriesName: "S", Status: StatusCompleted},
		{SeriesName: "S", Status: StatusReading},
	}
	books[0].Genres = []string{"A"}
	books[1].Genres = []string{"B"}

	first := BuildYearStats(books, 2024)
	for range 50 {
		assert.Equal(t, first, BuildYearStats(books, 2024))
	}
}

func TestBuildGoalProgress(t *testing.T) {
	goal := &ReadingGoal{Year: 2024, TargetBooks: 12}

	exact := BuildGoalProgress(YearStats{BooksRead: 12}, goal)
	assert.InDelta(t, 1.0, exact.Progress, 1e-9)
	assert.True(t, exact.Achieved)

	over := BuildGoalProgress(YearStats{BooksRead: 13}, goal)
	assert.Greater(t, over.Progress, 1.0)
	assert.True(t, over.Achieved)

	under := BuildGoalProgress(YearStats{BooksRead: 6}, goal)
	assert.InDelta(t, 0.5, under.Progress, 1e-9)
	assert.False(t, under.Achieved)

	none := BuildGoalProgress(YearStats{BooksRead: 6}, nil)
	assert.Zero(t, none.Progress)
	assert.False(t, none.Achieved)
}
