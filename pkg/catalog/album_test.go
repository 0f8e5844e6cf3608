package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaskavasileva/gh-copilot-demo/pkg/catalog"
)

func wellFormedAlbum() catalog.Album {
	return catalog.Album{
		ID:       1,
		Title:    "You, Me and an App Id",
		Artist:   "Daprize",
		Price:    10.99,
		ImageURL: "https://aka.ms/albums-daprlogo",
	}
}

func TestIsWellFormedRecord(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed album", func(t *testing.T) {
		t.Parallel()

		a := wellFormedAlbum()
		assert.True(t, catalog.IsWellFormedRecord(a))
		assert.True(t, catalog.IsWellFormedRecord(&a))
	})

	t.Run("genre is optional", func(t *testing.T) {
		t.Parallel()

		a := wellFormedAlbum()
		a.Genre = ""
		assert.True(t, catalog.IsWellFormedRecord(a))
	})

	t.Run("any failing field disqualifies the record", func(t *testing.T) {
		t.Parallel()

		cases := map[string]func(*catalog.Album){
			"empty title":    func(a *catalog.Album) { a.Title = "" },
			"blank artist":   func(a *catalog.Album) { a.Artist = "   " },
			"negative price": func(a *catalog.Album) { a.Price = -1 },
			"bad image URL":  func(a *catalog.Album) { a.ImageURL = "not-a-url" },
			"ftp image URL":  func(a *catalog.Album) { a.ImageURL = "ftp://example.com/cover.png" },
		}

		for name, mutate := range cases {
			mutate := mutate
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				a := wellFormedAlbum()
				mutate(&a)
				assert.False(t, catalog.IsWellFormedRecord(a))
			})
		}
	})

	t.Run("accepts a decoded JSON object", func(t *testing.T) {
		t.Parallel()

		record := map[string]any{
			"id":        float64(1), // JSON numbers decode as float64
			"title":     "Seven Revision Army",
			"artist":    "The Blue-Green Stripes",
			"price":     13.99,
			"image_url": "https://aka.ms/albums-containerappslogo",
		}
		assert.True(t, catalog.IsWellFormedRecord(record))

		record["id"] = 1.5 // identifier must be a whole number
		assert.False(t, catalog.IsWellFormedRecord(record))

		delete(record, "id")
		assert.False(t, catalog.IsWellFormedRecord(record))
	})

	t.Run("rejects non-record input", func(t *testing.T) {
		t.Parallel()

		assert.False(t, catalog.IsWellFormedRecord(nil))
		assert.False(t, catalog.IsWellFormedRecord("album"))
		assert.False(t, catalog.IsWellFormedRecord(42))
		assert.False(t, catalog.IsWellFormedRecord([]catalog.Album{wellFormedAlbum()}))
		assert.False(t, catalog.IsWellFormedRecord((*catalog.Album)(nil)))
	})
}

func TestValidateForm(t *testing.T) {
	t.Parallel()

	t.Run("valid input yields an empty map", func(t *testing.T) {
		t.Parallel()

		errs := catalog.ValidateForm(map[string]any{
			"title":     "Scale It Up",
			"artist":    "KEDA Club",
			"price":     13.99,
			"image_url": "https://aka.ms/albums-kedalogo",
		})
		assert.True(t, errs.Valid())
		assert.Empty(t, errs)
	})

	t.Run("reports every failing field in one pass", func(t *testing.T) {
		t.Parallel()

		errs := catalog.ValidateForm(map[string]any{
			"title":     "",
			"artist":    "   ",
			"price":     -5.0,
			"image_url": "not a url",
		})

		require.False(t, errs.Valid())
		assert.Len(t, errs, 4)
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "artist")
		assert.Contains(t, errs, "price")
		assert.Contains(t, errs, "image_url")
	})

	t.Run("absent fields fail their guard", func(t *testing.T) {
		t.Parallel()

		errs := catalog.ValidateForm(map[string]any{})
		assert.Len(t, errs, 4)
	})
}
