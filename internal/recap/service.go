package recap

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gfmartins/booktrail/internal/config"
	"github.com/gfmartins/booktrail/internal/goal"
	"github.com/gfmartins/booktrail/internal/library"
	util "github.com/gfmartins/booktrail/internal/utils"
)

const topN = 5

type Service interface {
	BuildYearRecap(ctx context.Context, userID uuid.UUID) (*YearRecapResponse, error)
}

type service struct {
	libraryRepo library.Repository
	goalService goal.Service
}

func NewService(libraryRepo library.Repository, goalService goal.Service) Service {
	return &service{
		libraryRepo: libraryRepo,
		goalService: goalService,
	}
}

// BuildYearRecap assembles the current year's reading summary. It is a
// pure aggregation over the library store and the goal engine.
func (s *service) BuildYearRecap(ctx context.Context, userID uuid.UUID) (*YearRecapResponse, error) {
	log := config.WithContext(ctx)

	now := time.Now()
	start, end := util.AnnualWindow(now)

	booksFinished, err := s.libraryRepo.CountFinishedInWindow(userID, start, end)
	if err != nil {
		return nil, err
	}

	pagesRead, err := s.libraryRepo.SumPagesFinishedInWindow(userID, start, end)
	if err != nil {
		return nil, err
	}

	topGenres, err := s.libraryRepo.TopGenres(userID, start, end, topN)
	if err != nil {
		return nil, err
	}

	topRated, err := s.libraryRepo.TopRatedBooks(userID, start, end, topN)
	if err != nil {
		return nil, err
	}

	inProgress, err := s.goalService.ListInProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	annualGoals := []goal.GoalResponse{}
	for _, g := range inProgress {
		if g.Duration == goal.DurationAnnual {
			annualGoals = append(annualGoals, g)
		}
	}

	log.WithField("user_id", userID).Debug("Year recap assembled")
	return &YearRecapResponse{
		Year:          now.Year(),
		BooksFinished: booksFinished,
		PagesRead:     pagesRead,
		TopGenres:     topGenres,
		TopRatedBooks: topRated,
		AnnualGoals:   annualGoals,
	}, nil
}
