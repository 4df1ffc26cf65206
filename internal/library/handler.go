package library

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

func (h *Handler) AddToLibrary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, bookID, ok := h.identify(w, r)
	if !ok {
		return
	}

	entry, err := h.service.AddToLibrary(r.Context(), userID, bookID)
	if err != nil {
		writeError(w, log, err, "Failed to add book to library")
		return
	}

	config.JSON(w, http.StatusCreated, entry)
}

func (h *Handler) RemoveFromLibrary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, bookID, ok := h.identify(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveFromLibrary(r.Context(), userID, bookID); err != nil {
		writeError(w, log, err, "Failed to remove book from library")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, bookID, ok := h.identify(w, r)
	if !ok {
		return
	}

	entry, err := h.service.GetEntry(r.Context(), userID, bookID)
	if err != nil {
		writeError(w, log, err, "Failed to load library entry")
		return
	}

	config.JSON(w, http.StatusOK, entry)
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID := uuid.MustParse(claims.UserID)

	var status *ReadingStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := ReadingStatus(s)
		status = &st
	}

	entries, err := h.service.ListByUser(r.Context(), userID, status)
	if err != nil {
		writeError(w, log, err, "Failed to list library entries")
		return
	}

	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, bookID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var dto SetStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.service.SetStatus(r.Context(), userID, bookID, dto.Status)
	if err != nil {
		writeError(w, log, err, "Failed to update reading status")
		return
	}

	config.JSON(w, http.StatusOK, entry)
}

func (h *Handler) SetProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, bookID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var dto SetProgressDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.service.SetProgress(r.Context(), userID, bookID, dto.Amount, dto.Kind)
	if err != nil {
		writeError(w, log, err, "Failed to update reading progress")
		return
	}

	config.JSON(w, http.StatusOK, entry)
}

func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, bookID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var dto RateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.service.Rate(r.Context(), userID, bookID, dto.Rating)
	if err != nil {
		writeError(w, log, err, "Failed to rate book")
		return
	}

	config.JSON(w, http.StatusOK, entry)
}

func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, bookID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var dto ReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.service.Review(r.Context(), userID, bookID, dto.Review)
	if err != nil {
		writeError(w, log, err, "Failed to save review")
		return
	}

	config.JSON(w, http.StatusOK, entry)
}

func (h *Handler) identify(w http.ResponseWriter, r *http.Request) (userID, bookID uuid.UUID, ok bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	bookID, err = uuid.Parse(chi.URLParam(r, "bookID"))
	if err != nil {
		http.Error(w, "invalid book id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return uuid.MustParse(claims.UserID), bookID, true
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrEntryNotFound), errors.Is(err, ErrBookNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDuplicateEntry), errors.Is(err, ErrNotReading):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidProgressKind),
		errors.Is(err, ErrInvalidProgress),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrReviewTooLong):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
