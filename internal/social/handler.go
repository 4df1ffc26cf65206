package social

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gfmartins/booktrail/internal/auth"
	"github.com/gfmartins/booktrail/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	followerID, followeeID, ok := h.identify(w, r)
	if !ok {
		return
	}

	if err := h.service.Follow(r.Context(), followerID, followeeID); err != nil {
		writeError(w, log, err, "Failed to follow user")
		return
	}

	config.JSON(w, http.StatusCreated, map[string]string{"message": "followed"})
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	followerID, followeeID, ok := h.identify(w, r)
	if !ok {
		return
	}

	if err := h.service.Unfollow(r.Context(), followerID, followeeID); err != nil {
		writeError(w, log, err, "Failed to unfollow user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListFollowers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	responses, err := h.service.ListFollowers(r.Context(), userID)
	if err != nil {
		writeError(w, log, err, "Failed to list followers")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	responses, err := h.service.ListFollowing(r.Context(), userID)
	if err != nil {
		writeError(w, log, err, "Failed to list following")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) identify(w http.ResponseWriter, r *http.Request) (followerID, followeeID uuid.UUID, ok bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	followeeID, err = uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return uuid.MustParse(claims.UserID), followeeID, true
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNotFollowing):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrAlreadyFollowing):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrSelfFollow):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
