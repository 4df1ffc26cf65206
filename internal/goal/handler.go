package goal

import (
	"encoding/json"
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		writeError(w, log, err, "Failed to create goal")
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := h.identify(w, r)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	response, err := h.service.Delete(r.Context(), userID, goalID)
	if err != nil {
		writeError(w, log, err, "Failed to delete goal")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) ListInProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := h.identify(w, r)
	if !ok {
		return
	}

	responses, err := h.service.ListInProgress(r.Context(), userID)
	if err != nil {
		writeError(w, log, err, "Failed to list in-progress goals")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) ListCompleted(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := h.identify(w, r)
	if !ok {
		return
	}

	responses, err := h.service.ListCompleted(r.Context(), userID)
	if err != nil {
		writeError(w, log, err, "Failed to list completed goals")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) identify(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return uuid.MustParse(claims.UserID), true
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrGoalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrGoalInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidKind),
		errors.Is(err, ErrInvalidDuration),
		errors.Is(err, ErrInvalidTarget):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
