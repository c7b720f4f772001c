package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a displayed book list.
type SortKey string

// Sort keys.
const (
	SortDateAdded SortKey = "dateAdded" // newest first, the default
	SortTitle     SortKey = "title"
	SortAuthor    SortKey = "author"
	SortProgress  SortKey = "progress"
)

// Valid reports whether the sort key is one of the known values.
func (k SortKey) Valid() bool {
	switch k {
	case SortDateAdded, SortTitle, SortAuthor, SortProgress:
		return true
	}
	return false
}

// BookQuery captures search text, filters and ordering for a displayed
// book list. Nil status/source means "no filter".
type BookQuery struct {
	Search string
	Status *ReadingStatus
	Source *BookSource
	Sort   SortKey
}

// collator does locale-aware, case-insensitive string ordering for
// title and author sorts.
var collator = collate.New(language.English, collate.IgnoreCase)

// FilterBooks derives a displayed list from the collection: filters are
// applied first, then the sort. The input slice is never mutated and
// the function is total - any query yields a valid (possibly empty)
// result.
func FilterBooks(books []Book, q BookQuery) []Book {
	result := make([]Book, 0, len(books))

	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, b := range books {
		if search != "" && !matchesSearch(&b, search) {
			continue
		}
		if q.Status != nil && b.Status != *q.Status {
			continue
		}
		if q.Source != nil && b.Source != *q.Source {
			continue
		}
		result = append(result, b)
	}

	switch q.Sort {
	case SortTitle:
		slices.SortStableFunc(result, func(a, b Book) int {
			return collator.CompareString(a.Title, b.Title)
		})
	case SortAuthor:
		slices.SortStableFunc(result, func(a, b Book) int {
			return collator.CompareString(a.FirstAuthor(), b.FirstAuthor())
		})
	case SortProgress:
		slices.SortStableFunc(result, func(a, b Book) int {
			pa, pb := a.Progress(), b.Progress()
			switch {
			case pb > pa:
				return 1
			case pb < pa:
				return -1
			}
			return 0
		})
	default:
		// dateAdded descending, also the fallback for unknown keys.
		slices.SortStableFunc(result, func(a, b Book) int {
			return b.DateAdded.Compare(a.DateAdded)
		})
	}

	return result
}

// matchesSearch reports a case-insensitive substring match on the
// title or any author. The needle must already be lowercased.
func matchesSearch(b *Book, needle string) bool {
	if strings.Contains(strings.ToLower(b.Title), needle) {
		return true
	}
	for _, a := range b.Authors {
		if strings.Contains(strings.ToLower(a), needle) {
			return true
		}
	}
	return false
}
