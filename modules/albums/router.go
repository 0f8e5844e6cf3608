package albums

import "github.com/go-chi/chi/v5"

// Router mounts the albums resource.
//
//	r := chi.NewRouter()
//	r.Mount("/albums", albums.Router(albums.NewHandler(store, log)))
func Router(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	return r
}
