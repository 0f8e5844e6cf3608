// Package albums exposes the catalog over HTTP: a thin, read-only REST
// resource listing albums (optionally sorted) and fetching one by id.
package albums

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vaskavasileva/gh-copilot-demo/pkg/catalog"
)

// Handler serves the albums resource from a Store.
type Handler struct {
	store *Store
	log   *slog.Logger
}

// NewHandler returns a handler reading from store. A nil logger discards
// log output.
func NewHandler(store *Store, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{store: store, log: log}
}

// List handles GET /albums. The sortBy query parameter selects the order
// key (title, name, artist, genre) and direction selects asc or desc;
// an unknown key leaves the catalog in its stored order, matching the
// always-empty comparison of the ordering engine.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	key := catalog.SortKey(r.URL.Query().Get("sortBy"))

	direction := catalog.Ascending
	if r.URL.Query().Get("direction") == string(catalog.Descending) {
		direction = catalog.Descending
	}

	records := h.store.All()
	if key != "" {
		records = catalog.SortAlbums(records, key, direction)
	}

	h.log.Debug("listing albums",
		slog.String("sort_by", string(key)),
		slog.String("direction", string(direction)),
		slog.Int("count", len(records)))

	writeJSON(w, http.StatusOK, records)
}

// Get handles GET /albums/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "album id must be an integer")
		return
	}

	album, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "album not found")
		return
	}

	writeJSON(w, http.StatusOK, album)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
