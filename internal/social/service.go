package social

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gfmartins/booktrail/internal/config"
	"github.com/gfmartins/booktrail/internal/user"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrUserNotFound     = user.ErrUserNotFound
)

type Service interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]user.UserResponse, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]user.UserResponse, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
}

func NewService(repo Repository, userRepo user.Repository) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *service) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	log := config.WithContext(ctx)

	if followerID == followeeID {
		return ErrSelfFollow
	}
	if err := s.checkUser(followeeID); err != nil {
		return err
	}

	exists, err := s.repo.Exists(followerID, followeeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFollowing
	}

	if err := s.repo.Create(&Follow{FollowerID: followerID, FolloweeID: followeeID}); err != nil {
		log.WithError(err).Error("Failed to create follow")
		return err
	}

	log.WithFields(map[string]interface{}{
		"follower_id": followerID,
		"followee_id": followeeID,
	}).Info("User followed")
	return nil
}

func (s *service) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if err := s.checkUser(followeeID); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(followerID, followeeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFollowing
	}
	return nil
}

func (s *service) ListFollowers(ctx context.Context, userID uuid.UUID) ([]user.UserResponse, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}

	users, err := s.repo.FindFollowers(userID)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func (s *service) ListFollowing(ctx context.Context, userID uuid.UUID) ([]user.UserResponse, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}

	users, err := s.repo.FindFollowing(userID)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func (s *service) checkUser(id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func toResponses(users []user.User) []user.UserResponse {
	responses := []user.UserResponse{}
	for i := range users {
		u := users[i]
		responses = append(responses, user.UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return responses
}
