package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/in-progress", h.ListInProgress)
	r.Get("/completed", h.ListCompleted)
	r.Delete("/{id}", h.Delete)

	return r
}
