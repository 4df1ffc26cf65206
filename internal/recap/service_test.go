package recap_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfmartins/booktrail/internal/goal"
	"github.com/gfmartins/booktrail/internal/library"
	"github.com/gfmartins/booktrail/internal/recap"
	util "github.com/gfmartins/booktrail/internal/utils"
)

type fakeLibraryRepo struct {
	library.Repository

	booksFinished int64
	pagesRead     int64
	genres        []library.GenreCount
	ratedBooks    []library.RatedBook
	windowsSeen   [][2]util.Date
}

func (r *fakeLibraryRepo) CountFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error) {
	r.windowsSeen = append(r.windowsSeen, [2]util.Date{start, end})
	return r.booksFinished, nil
}

func (r *fakeLibraryRepo) SumPagesFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error) {
	return r.pagesRead, nil
}

func (r *fakeLibraryRepo) TopGenres(userID uuid.UUID, start, end util.Date, limit int) ([]library.GenreCount, error) {
	return r.genres, nil
}

func (r *fakeLibraryRepo) TopRatedBooks(userID uuid.UUID, start, end util.Date, limit int) ([]library.RatedBook, error) {
	return r.ratedBooks, nil
}

type fakeGoalService struct {
	goal.Service

	inProgress  []goal.GoalResponse
	resyncCalls int
}

func (s *fakeGoalService) ListInProgress(ctx context.Context, userID uuid.UUID) ([]goal.GoalResponse, error) {
	s.resyncCalls++
	return s.inProgress, nil
}

func TestBuildYearRecap(t *testing.T) {
	libraryRepo := &fakeLibraryRepo{
		booksFinished: 17,
		pagesRead:     5230,
		genres: []library.GenreCount{
			{Genre: "fantasy", Count: 9},
			{Genre: "scifi", Count: 5},
		},
		ratedBooks: []library.RatedBook{
			{BookID: uuid.New(), Title: "Ficções", Author: "Jorge Luis Borges", Rating: 5},
		},
	}
	goalService := &fakeGoalService{
		inProgress: []goal.GoalResponse{
			{ID: uuid.New(), Kind: goal.KindBooks, Duration: goal.DurationAnnual, TargetAmount: 24},
			{ID: uuid.New(), Kind: goal.KindPages, Duration: goal.DurationMonthly, TargetAmount: 900},
		},
	}

	svc := recap.NewService(libraryRepo, goalService)

	response, err := svc.BuildYearRecap(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, time.Now().Year(), response.Year)
	assert.Equal(t, int64(17), response.BooksFinished)
	assert.Equal(t, int64(5230), response.PagesRead)
	assert.Len(t, response.TopGenres, 2)
	assert.Len(t, response.TopRatedBooks, 1)

	require.Len(t, response.AnnualGoals, 1, "monthly goals are not part of the year recap")
	assert.Equal(t, goal.DurationAnnual, response.AnnualGoals[0].Duration)

	start, end := util.AnnualWindow(time.Now())
	require.Len(t, libraryRepo.windowsSeen, 1)
	assert.True(t, libraryRepo.windowsSeen[0][0].Equal(start))
	assert.True(t, libraryRepo.windowsSeen[0][1].Equal(end))
}
