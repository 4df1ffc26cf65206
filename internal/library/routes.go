package library

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListEntries)
	r.Post("/{bookID}", h.AddToLibrary)
	r.Get("/{bookID}", h.GetEntry)
	r.Delete("/{bookID}", h.RemoveFromLibrary)
	r.Patch("/{bookID}/status", h.SetStatus)
	r.Patch("/{bookID}/progress", h.SetProgress)
	r.Put("/{bookID}/rating", h.Rate)
	r.Put("/{bookID}/review", h.Review)

	return r
}
