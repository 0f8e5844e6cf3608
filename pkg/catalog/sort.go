package catalog

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the album field records are ordered by.
type SortKey string

const (
	SortKeyTitle  SortKey = "title"
	SortKeyName   SortKey = "name" // alias for title
	SortKeyArtist SortKey = "artist"
	SortKeyGenre  SortKey = "genre"
)

// SortDirection is the ordering direction.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortAlbums returns a new slice with albums ordered by the selected key.
// The input is never mutated and ties keep their relative input order.
// Comparison is case-insensitive collation, not raw byte order, so mixed
// case sorts the way a person expects. A record without the selected field
// compares as the empty string and therefore sorts first ascending. An
// unrecognized key compares every record as empty, leaving the input order.
func SortAlbums(albums []Album, key SortKey, direction SortDirection) []Album {
	sorted := slices.Clone(albums)

	// A collator keeps internal buffers, so each sort gets its own.
	c := collate.New(language.Und, collate.IgnoreCase)

	slices.SortStableFunc(sorted, func(a, b Album) int {
		cmp := c.CompareString(sortValue(a, key), sortValue(b, key))
		if direction == Descending {
			cmp = -cmp
		}
		return cmp
	})
	return sorted
}

// SortAlbumsByTitle orders a copy of albums by title.
func SortAlbumsByTitle(albums []Album, direction SortDirection) []Album {
	return SortAlbums(albums, SortKeyTitle, direction)
}

// SortAlbumsByArtist orders a copy of albums by artist.
func SortAlbumsByArtist(albums []Album, direction SortDirection) []Album {
	return SortAlbums(albums, SortKeyArtist, direction)
}

// SortAlbumsByGenre orders a copy of albums by genre; records without a
// genre sort before any genre ascending.
func SortAlbumsByGenre(albums []Album, direction SortDirection) []Album {
	return SortAlbums(albums, SortKeyGenre, direction)
}

// sortValue extracts the text an album is compared by. Unknown keys fall
// through to the empty string rather than failing the whole sort.
func sortValue(a Album, key SortKey) string {
	switch key {
	case SortKeyTitle, SortKeyName:
		return a.Title
	case SortKeyArtist:
		return a.Artist
	case SortKeyGenre:
		return a.Genre
	default:
		return ""
	}
}
