package albums

import (
	"slices"

	"github.com/vaskavasileva/gh-copilot-demo/pkg/catalog"
)

// Store is the read-only in-memory album source the sample ships with. It
// stands in for the real persistence layer, which is out of scope here.
type Store struct {
	albums []catalog.Album
}

// NewStore returns a store holding the given records.
func NewStore(albums []catalog.Album) *Store {
	return &Store{albums: slices.Clone(albums)}
}

// NewSeededStore returns a store preloaded with the sample catalog.
func NewSeededStore() *Store {
	return NewStore([]catalog.Album{
		{ID: 1, Title: "You, Me and an App Id", Artist: "Daprize", Price: 10.99, ImageURL: "https://aka.ms/albums-daprlogo", Genre: "Electronic"},
		{ID: 2, Title: "Seven Revision Army", Artist: "The Blue-Green Stripes", Price: 13.99, ImageURL: "https://aka.ms/albums-containerappslogo", Genre: "Rock"},
		{ID: 3, Title: "Scale It Up", Artist: "KEDA Club", Price: 13.99, ImageURL: "https://aka.ms/albums-kedalogo", Genre: "Pop"},
		{ID: 4, Title: "Lost in Translation", Artist: "MegaDNS", Price: 12.99, ImageURL: "https://aka.ms/albums-envoylogo"},
		{ID: 5, Title: "Lock Down Your Love", Artist: "V is for VNET", Price: 12.99, ImageURL: "https://aka.ms/albums-vnetlogo", Genre: "Rock"},
		{ID: 6, Title: "Sweet Container O' Mine", Artist: "Guns N Probeses", Price: 14.99, ImageURL: "https://aka.ms/albums-containerappslogo", Genre: "Metal"},
	})
}

// All returns a copy of every album in insertion order.
func (s *Store) All() []catalog.Album {
	return slices.Clone(s.albums)
}

// Get returns the album with the given id.
func (s *Store) Get(id int64) (catalog.Album, bool) {
	for _, a := range s.albums {
		if a.ID == id {
			return a, true
		}
	}
	return catalog.Album{}, false
}
