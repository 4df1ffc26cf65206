package social

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/{userID}/follow", h.Follow)
	r.Delete("/{userID}/follow", h.Unfollow)
	r.Get("/{userID}/followers", h.ListFollowers)
	r.Get("/{userID}/following", h.ListFollowing)

	return r
}
