package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gfmartins/booktrail/internal/config"
	util "github.com/gfmartins/booktrail/internal/utils"
)

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrGoalInProgress  = errors.New("an in-progress goal of this kind already exists")
	ErrForbidden       = errors.New("goal belongs to another user")
	ErrInvalidKind     = errors.New("invalid goal kind")
	ErrInvalidDuration = errors.New("invalid goal duration")
	ErrInvalidTarget   = errors.New("target amount must be positive")
)

// ReadingActivity is the slice of the library store the goal engine reads.
// Totals are re-derived from it rather than accumulated from individual
// mutations, which keeps resynchronization idempotent.
type ReadingActivity interface {
	CountFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error)
	SumPagesFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error)
}

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error)
	Delete(ctx context.Context, userID, goalID uuid.UUID) (*GoalResponse, error)
	ListInProgress(ctx context.Context, userID uuid.UUID) ([]GoalResponse, error)
	ListCompleted(ctx context.Context, userID uuid.UUID) ([]GoalResponse, error)
	Resynchronize(ctx context.Context, userID uuid.UUID, pageDelta int64) error
}

type service struct {
	repo     Repository
	activity ReadingActivity
}

func NewService(repo Repository, activity ReadingActivity) Service {
	return &service{
		repo:     repo,
		activity: activity,
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	kind := GoalKind(dto.Kind)
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	duration := DurationKind(dto.Duration)
	if !duration.IsValid() {
		return nil, ErrInvalidDuration
	}
	if dto.TargetAmount <= 0 {
		return nil, ErrInvalidTarget
	}

	today := util.Today()

	existing, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		g := &existing[i]
		if g.Kind == kind && g.Duration == duration && !g.Completed(today) {
			return nil, ErrGoalInProgress
		}
	}

	var start, end util.Date
	if duration == DurationAnnual {
		start, end = util.AnnualWindow(time.Now())
	} else {
		start, end = util.MonthlyWindow(time.Now())
	}

	// Activity already inside the window counts toward a brand-new goal.
	current, err := s.currentAmount(userID, kind, start, end)
	if err != nil {
		return nil, err
	}

	g := &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          kind,
		Duration:      duration,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: current,
		WindowStart:   start,
		WindowEnd:     end,
	}

	if err := s.repo.Create(g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"goal_id":  g.ID,
		"kind":     kind,
		"duration": duration,
	}).Info("Goal created")
	return toResponse(g, today), nil
}

func (s *service) Delete(ctx context.Context, userID, goalID uuid.UUID) (*GoalResponse, error) {
	g, err := s.repo.FindByID(goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	if g.UserID != userID {
		return nil, ErrForbidden
	}

	if err := s.repo.Delete(goalID); err != nil {
		return nil, err
	}
	return toResponse(g, util.Today()), nil
}

func (s *service) ListInProgress(ctx context.Context, userID uuid.UUID) ([]GoalResponse, error) {
	// Self-healing: bring every in-progress goal up to date with the
	// store before reporting it.
	if err := s.Resynchronize(ctx, userID, 0); err != nil {
		return nil, err
	}
	return s.partition(userID, false)
}

func (s *service) ListCompleted(ctx context.Context, userID uuid.UUID) ([]GoalResponse, error) {
	return s.partition(userID, true)
}

// Resynchronize updates the current amount of every in-progress goal.
// BOOKS goals are fully recomputed from the store, so a missed update is
// repaired on the next pass. PAGES goals have no exact source of truth for
// partially read books and accumulate the caller-supplied delta instead.
func (s *service) Resynchronize(ctx context.Context, userID uuid.UUID, pageDelta int64) error {
	log := config.WithContext(ctx)

	goals, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return err
	}

	today := util.Today()
	for i := range goals {
		g := &goals[i]
		if g.Completed(today) {
			continue
		}

		switch g.Kind {
		case KindBooks:
			count, err := s.activity.CountFinishedInWindow(userID, g.WindowStart, g.WindowEnd)
			if err != nil {
				return err
			}
			g.CurrentAmount = count
		case KindPages:
			g.CurrentAmount += pageDelta
		default:
			// A stored kind outside the enum means corrupt data, not a
			// recoverable user error.
			return fmt.Errorf("unrecognized goal kind %q on goal %s", g.Kind, g.ID)
		}

		if err := s.repo.Update(g); err != nil {
			log.WithError(err).WithField("goal_id", g.ID).Error("Failed to persist goal resynchronization")
			return err
		}
	}

	return nil
}

func (s *service) currentAmount(userID uuid.UUID, kind GoalKind, start, end util.Date) (int64, error) {
	switch kind {
	case KindBooks:
		return s.activity.CountFinishedInWindow(userID, start, end)
	case KindPages:
		return s.activity.SumPagesFinishedInWindow(userID, start, end)
	default:
		return 0, fmt.Errorf("unrecognized goal kind %q", kind)
	}
}

func (s *service) partition(userID uuid.UUID, completed bool) ([]GoalResponse, error) {
	goals, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	today := util.Today()
	responses := []GoalResponse{}
	for i := range goals {
		g := &goals[i]
		if g.Completed(today) == completed {
			responses = append(responses, *toResponse(g, today))
		}
	}
	return responses, nil
}
