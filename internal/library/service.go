package library

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gfmartins/booktrail/internal/book"
	"github.com/gfmartins/booktrail/internal/config"
	util "github.com/gfmartins/booktrail/internal/utils"
)

var (
	ErrEntryNotFound       = errors.New("library entry not found")
	ErrDuplicateEntry      = errors.New("book already in library")
	ErrBookNotFound        = book.ErrBookNotFound
	ErrInvalidStatus       = errors.New("invalid reading status")
	ErrInvalidProgressKind = errors.New("invalid progress kind")
	ErrInvalidProgress     = errors.New("progress amount must not be negative")
	ErrInvalidRating       = errors.New("rating must be 0 or between 0.5 and 5.0 in 0.5 steps")
	ErrReviewTooLong       = errors.New("review must be at most 2000 characters")
	ErrNotReading          = errors.New("progress can only be updated while reading")
)

const maxReviewLength = 2000

// GoalSyncer resynchronizes a user's in-progress goals after reading
// activity. Satisfied by the goal service.
type GoalSyncer interface {
	Resynchronize(ctx context.Context, userID uuid.UUID, pageDelta int64) error
}

type Service interface {
	AddToLibrary(ctx context.Context, userID, bookID uuid.UUID) (*LibraryEntry, error)
	RemoveFromLibrary(ctx context.Context, userID, bookID uuid.UUID) error
	SetStatus(ctx context.Context, userID, bookID uuid.UUID, status string) (*LibraryEntry, error)
	SetProgress(ctx context.Context, userID, bookID uuid.UUID, amount int, kind string) (*LibraryEntry, error)
	Rate(ctx context.Context, userID, bookID uuid.UUID, value float64) (*LibraryEntry, error)
	Review(ctx context.Context, userID, bookID uuid.UUID, text string) (*LibraryEntry, error)
	GetEntry(ctx context.Context, userID, bookID uuid.UUID) (*LibraryEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *ReadingStatus) ([]LibraryEntry, error)
}

type service struct {
	repo     Repository
	bookRepo book.Repository
	goals    GoalSyncer
}

func NewService(repo Repository, bookRepo book.Repository, goals GoalSyncer) Service {
	return &service{
		repo:     repo,
		bookRepo: bookRepo,
		goals:    goals,
	}
}

func (s *service) AddToLibrary(ctx context.Context, userID, bookID uuid.UUID) (*LibraryEntry, error) {
	log := config.WithContext(ctx)

	if _, err := s.findBook(bookID); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUserAndBook(userID, bookID); err == nil {
		return nil, ErrDuplicateEntry
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &LibraryEntry{
		ID:            uuid.New(),
		UserID:        userID,
		BookID:        bookID,
		Status:        StatusPending,
		ProgressValue: 0,
		ProgressKind:  ProgressPercentage,
		Rating:        0,
	}

	if err := s.repo.Create(entry); err != nil {
		log.WithError(err).Error("Failed to create library entry")
		return nil, err
	}

	log.WithField("book_id", bookID).Info("Book added to library")
	return entry, nil
}

func (s *service) RemoveFromLibrary(ctx context.Context, userID, bookID uuid.UUID) error {
	entry, err := s.findEntry(userID, bookID)
	if err != nil {
		return err
	}
	return s.repo.Delete(entry)
}

func (s *service) SetStatus(ctx context.Context, userID, bookID uuid.UUID, status string) (*LibraryEntry, error) {
	log := config.WithContext(ctx)

	newStatus := ReadingStatus(status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	entry, err := s.findEntry(userID, bookID)
	if err != nil {
		return nil, err
	}

	previous := entry.Status
	entry.Status = newStatus

	today := util.Today()
	switch {
	case newStatus == StatusReading:
		entry.DateStarted = &today
	case previous == StatusReading && newStatus == StatusRead:
		entry.DateFinished = &today
	case newStatus == StatusPending && (previous == StatusPaused || previous == StatusAbandoned):
		entry.DateStarted = nil
	}

	if err := s.repo.Update(entry); err != nil {
		log.WithError(err).Error("Failed to update reading status")
		return nil, err
	}

	if previous == StatusReading && newStatus == StatusRead {
		// The goal engine re-derives finished-book totals from the store,
		// so no page delta is carried here.
		if err := s.goals.Resynchronize(ctx, userID, 0); err != nil {
			return nil, err
		}
	}

	log.WithFields(map[string]interface{}{
		"book_id": bookID,
		"from":    previous,
		"to":      newStatus,
	}).Info("Reading status updated")
	return entry, nil
}

func (s *service) SetProgress(ctx context.Context, userID, bookID uuid.UUID, amount int, kind string) (*LibraryEntry, error) {
	log := config.WithContext(ctx)

	progressKind := ProgressKind(kind)
	if !progressKind.IsValid() {
		return nil, ErrInvalidProgressKind
	}
	if amount < 0 {
		return nil, ErrInvalidProgress
	}

	entry, err := s.findEntry(userID, bookID)
	if err != nil {
		return nil, err
	}
	if entry.Status != StatusReading {
		return nil, ErrNotReading
	}

	b, err := s.findBook(bookID)
	if err != nil {
		return nil, err
	}

	today := util.Today()
	switch progressKind {
	case ProgressPercentage:
		if amount >= 100 {
			amount = 100
			entry.Status = StatusRead
			entry.DateStarted = &today
		}
	case ProgressPages:
		if amount >= b.PageCount {
			amount = b.PageCount
			entry.Status = StatusRead
			entry.DateFinished = &today
		}
	}
	entry.ProgressValue = amount
	entry.ProgressKind = progressKind

	if err := s.repo.Update(entry); err != nil {
		log.WithError(err).Error("Failed to update reading progress")
		return nil, err
	}

	var pageDelta int64
	if progressKind == ProgressPercentage {
		pageDelta = int64(math.Round(float64(amount) / 100 * float64(b.PageCount)))
	} else {
		pageDelta = int64(amount)
	}

	if err := s.goals.Resynchronize(ctx, userID, pageDelta); err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"book_id":    bookID,
		"amount":     amount,
		"kind":       progressKind,
		"page_delta": pageDelta,
	}).Info("Reading progress updated")
	return entry, nil
}

func (s *service) Rate(ctx context.Context, userID, bookID uuid.UUID, value float64) (*LibraryEntry, error) {
	log := config.WithContext(ctx)

	if !validRating(value) {
		return nil, ErrInvalidRating
	}

	entry, err := s.findEntry(userID, bookID)
	if errors.Is(err, ErrEntryNotFound) {
		// Rating a book the user never added materializes the entry.
		entry, err = s.AddToLibrary(ctx, userID, bookID)
	}
	if err != nil {
		return nil, err
	}

	entry.Rating = value
	entry.Status = StatusRead

	if err := s.repo.Update(entry); err != nil {
		log.WithError(err).Error("Failed to save rating")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"book_id": bookID,
		"rating":  value,
	}).Info("Book rated")
	return entry, nil
}

func (s *service) Review(ctx context.Context, userID, bookID uuid.UUID, text string) (*LibraryEntry, error) {
	if len(text) > maxReviewLength {
		return nil, ErrReviewTooLong
	}

	entry, err := s.findEntry(userID, bookID)
	if err != nil {
		return nil, err
	}

	entry.Review = text
	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) GetEntry(ctx context.Context, userID, bookID uuid.UUID) (*LibraryEntry, error) {
	return s.findEntry(userID, bookID)
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, status *ReadingStatus) ([]LibraryEntry, error) {
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.FindAllByUser(userID, status)
}

func (s *service) findEntry(userID, bookID uuid.UUID) (*LibraryEntry, error) {
	entry, err := s.repo.FindByUserAndBook(userID, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *service) findBook(bookID uuid.UUID) (*book.Book, error) {
	b, err := s.bookRepo.FindByID(bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

// validRating accepts 0 (unrated) or 0.5 through 5.0 in half-point steps.
func validRating(v float64) bool {
	if v == 0 {
		return true
	}
	if v < 0.5 || v > 5.0 {
		return false
	}
	doubled := v * 2
	return doubled == math.Trunc(doubled)
}
