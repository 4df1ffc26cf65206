package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/gfmartins/booktrail/internal/auth"
	"github.com/gfmartins/booktrail/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GoogleLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Code == "" {
		log.Warn("Invalid Google login payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.GoogleLogin(r.Context(), dto.Code)
	if err != nil {
		log.WithError(err).Error("Google login failed")
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	if err := issueTokens(w, response); err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie(auth.RefreshTokenCookie)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Invalid refresh token")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Refresh for unknown user")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := issueTokens(w, response); err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "token refreshed"})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := h.service.GetUser(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func issueTokens(w http.ResponseWriter, u *UserResponse) error {
	access, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.AccessTokenTTL)
	if err != nil {
		return err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.RefreshTokenTTL)
	if err != nil {
		return err
	}

	auth.SetTokenCookie(w, auth.AccessTokenCookie, access, auth.AccessTokenTTL)
	auth.SetTokenCookie(w, auth.RefreshTokenCookie, refresh, auth.RefreshTokenTTL)
	return nil
}
