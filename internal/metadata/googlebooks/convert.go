package googlebooks

import (
	"strings"
	"time"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/id"
)

// convertVolume maps a volumes API record to a domain book ready to
// add to a library. New books start as want-to-read at page zero.
func convertVolume(v *volume) domain.Book {
	info := &v.VolumeInfo

	return domain.Book{
		ID:            id.MustGenerate("book"),
		Title:         info.Title,
		Authors:       info.Authors,
		CoverURL:      coverURL(info.ImageLinks),
		ISBN:          pickISBN(info.IndustryIdentifiers),
		PageCount:     info.PageCount,
		Genres:        info.Categories,
		Description:   info.Description,
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		Source:        domain.SourceOther,
		Status:        domain.StatusWantToRead,
		CurrentPage:   0,
		DateAdded:     time.Now().UTC(),
	}
}

// pickISBN prefers ISBN-13 over ISBN-10 when both identifiers exist.
func pickISBN(identifiers []industryIdentifier) string {
	var isbn10 string
	for _, ident := range identifiers {
		switch ident.Type {
		case "ISBN_13":
			return ident.Identifier
		case "ISBN_10":
			isbn10 = ident.Identifier
		}
	}
	return isbn10
}

// coverURL picks the best thumbnail and upgrades the scheme. Google
// Books still serves http:// links, which mobile webviews refuse to load.
func coverURL(links imageLinks) string {
	u := links.Thumbnail
	if u == "" {
		u = links.SmallThumbnail
	}
	return strings.Replace(u, "http://", "https://", 1)
}
