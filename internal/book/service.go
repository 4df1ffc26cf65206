package book

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gfmartins/booktrail/internal/config"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidPageCount = errors.New("page count must be positive")
)

type Service interface {
	Create(ctx context.Context, dto CreateBookDTO) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateBookDTO) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateBookDTO) (*Book, error) {
	log := config.WithContext(ctx)

	if dto.Title == "" {
		return nil, ErrTitleRequired
	}
	if dto.PageCount <= 0 {
		return nil, ErrInvalidPageCount
	}

	b := &Book{
		ID:          uuid.New(),
		Title:       dto.Title,
		Author:      dto.Author,
		Genre:       dto.Genre,
		PageCount:   dto.PageCount,
		Description: dto.Description,
	}

	if err := s.repo.Create(b); err != nil {
		log.WithError(err).Error("Failed to create book")
		return nil, err
	}

	log.WithField("book_id", b.ID).Info("Book created")
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Book, error) {
	b, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context) ([]Book, error) {
	return s.repo.FindAll()
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateBookDTO) (*Book, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if *dto.Title == "" {
			return nil, ErrTitleRequired
		}
		b.Title = *dto.Title
	}
	if dto.Author != nil {
		b.Author = *dto.Author
	}
	if dto.Genre != nil {
		b.Genre = *dto.Genre
	}
	if dto.PageCount != nil {
		if *dto.PageCount <= 0 {
			return nil, ErrInvalidPageCount
		}
		b.PageCount = *dto.PageCount
	}
	if dto.Description != nil {
		b.Description = *dto.Description
	}

	if err := s.repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
