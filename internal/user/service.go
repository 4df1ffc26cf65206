package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/gfmartins/booktrail/internal/config"
)

var ErrUserNotFound = errors.New("user not found")

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type Service interface {
	GoogleLogin(ctx context.Context, code string) (*UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin exchanges an OAuth authorization code, upserts the user and
// returns it. The refresh token is stored encrypted.
func (s *service) GoogleLogin(ctx context.Context, code string) (*UserResponse, error) {
	log := config.WithContext(ctx)

	cfg := oauthConfig()
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google authorization code")
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	resp, err := cfg.Client(ctx, token).Get(userInfoURL)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	u, err := s.repo.FindByGoogleID(info.ID)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = &User{
			ID:       uuid.New(),
			Name:     info.Name,
			Email:    info.Email,
			GoogleID: info.ID,
			Role:     "user",
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user")
			return nil, err
		}
		log.WithField("user_id", u.ID).Info("New user registered via Google")
	default:
		return nil, err
	}

	if token.RefreshToken != "" {
		encrypted, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("encrypt refresh token: %w", err)
		}
		u.RefreshToken = encrypted
		if err := s.repo.Update(u); err != nil {
			return nil, err
		}
	}

	return toResponse(u), nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toResponse(u), nil
}
