package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gfmartins/booktrail/internal/goal"
	util "github.com/gfmartins/booktrail/internal/utils"
)

type fakeRepo struct {
	goals map[uuid.UUID]*goal.Goal
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{goals: map[uuid.UUID]*goal.Goal{}}
}

func (r *fakeRepo) Create(g *goal.Goal) error {
	copied := *g
	r.goals[g.ID] = &copied
	return nil
}

func (r *fakeRepo) FindByID(id uuid.UUID) (*goal.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeRepo) FindAllByUserID(userID uuid.UUID) ([]goal.Goal, error) {
	var goals []goal.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			goals = append(goals, *g)
		}
	}
	return goals, nil
}

func (r *fakeRepo) Update(g *goal.Goal) error {
	copied := *g
	r.goals[g.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

type fakeActivity struct {
	finishedBooks int64
	finishedPages int64
	countCalls    int
}

func (a *fakeActivity) CountFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error) {
	a.countCalls++
	return a.finishedBooks, nil
}

func (a *fakeActivity) SumPagesFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error) {
	return a.finishedPages, nil
}

func seedGoal(repo *fakeRepo, userID uuid.UUID, kind goal.GoalKind, duration goal.DurationKind, target int, current int64) *goal.Goal {
	var start, end util.Date
	if duration == goal.DurationAnnual {
		start, end = util.AnnualWindow(time.Now())
	} else {
		start, end = util.MonthlyWindow(time.Now())
	}

	g := &goal.Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          kind,
		Duration:      duration,
		TargetAmount:  target,
		CurrentAmount: current,
		WindowStart:   start,
		WindowEnd:     end,
	}
	repo.goals[g.ID] = g
	return g
}

func TestCreateGoal(t *testing.T) {
	t.Run("Validation", func(t *testing.T) {
		svc := goal.NewService(newFakeRepo(), &fakeActivity{})
		userID := uuid.New()

		_, err := svc.Create(context.Background(), userID, goal.CreateGoalDTO{Kind: "CHAPTERS", Duration: "ANNUAL", TargetAmount: 12})
		assert.ErrorIs(t, err, goal.ErrInvalidKind)

		_, err = svc.Create(context.Background(), userID, goal.CreateGoalDTO{Kind: "BOOKS", Duration: "WEEKLY", TargetAmount: 12})
		assert.ErrorIs(t, err, goal.ErrInvalidDuration)

		_, err = svc.Create(context.Background(), userID, goal.CreateGoalDTO{Kind: "BOOKS", Duration: "ANNUAL", TargetAmount: 0})
		assert.ErrorIs(t, err, goal.ErrInvalidTarget)
	})

	t.Run("SeedsBooksFromStore", func(t *testing.T) {
		svc := goal.NewService(newFakeRepo(), &fakeActivity{finishedBooks: 3})

		response, err := svc.Create(context.Background(), uuid.New(), goal.CreateGoalDTO{Kind: "BOOKS", Duration: "ANNUAL", TargetAmount: 12})
		require.NoError(t, err)

		assert.Equal(t, int64(3), response.CurrentAmount)
		assert.Equal(t, 25, response.Percentage)
		assert.False(t, response.Completed)

		start, end := util.AnnualWindow(time.Now())
		assert.True(t, response.WindowStart.Equal(start))
		assert.True(t, response.WindowEnd.Equal(end))
	})

	t.Run("SeedsPagesFromStore", func(t *testing.T) {
		svc := goal.NewService(newFakeRepo(), &fakeActivity{finishedPages: 820})

		response, err := svc.Create(context.Background(), uuid.New(), goal.CreateGoalDTO{Kind: "PAGES", Duration: "MONTHLY", TargetAmount: 1000})
		require.NoError(t, err)

		assert.Equal(t, int64(820), response.CurrentAmount)

		start, end := util.MonthlyWindow(time.Now())
		assert.True(t, response.WindowStart.Equal(start))
		assert.True(t, response.WindowEnd.Equal(end))
	})

	t.Run("RejectsDuplicateInProgress", func(t *testing.T) {
		repo := newFakeRepo()
		svc := goal.NewService(repo, &fakeActivity{})
		userID := uuid.New()

		_, err := svc.Create(context.Background(), userID, goal.CreateGoalDTO{Kind: "BOOKS", Duration: "ANNUAL", TargetAmount: 12})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), userID, goal.CreateGoalDTO{Kind: "BOOKS", Duration: "ANNUAL", TargetAmount: 24})
		assert.ErrorIs(t, err, goal.ErrGoalInProgress)
	})

	t.Run("AllowsDifferentKindOrDuration", func(t *testing.T) {
		repo := newFakeRepo()
		svc := goal.NewService(repo, &fakeActivity{})
		userID := uuid.New()

		_, err := svc.Create(context.Background(), userID, goal.CreateGoalDTO{Kind: "BOOKS", Duration: "ANNUAL", TargetAmount: 12})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), userID, goal.CreateGoalDTO{Kind: "PAGES", Duration: "ANNUAL", TargetAmount: 5000})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), userID, goal.CreateGoalDTO{Kind: "BOOKS", Duration: "MONTHLY", TargetAmount: 2})
		require.NoError(t, err)
	})

	t.Run("AllowsNewGoalAfterCompletion", func(t *testing.T) {
		repo := newFakeRepo()
		svc := goal.NewService(repo, &fakeActivity{})
		userID := uuid.New()

		seedGoal(repo, userID, goal.KindBooks, goal.DurationAnnual, 10, 10)

		_, err := svc.Create(context.Background(), userID, goal.CreateGoalDTO{Kind: "BOOKS", Duration: "ANNUAL", TargetAmount: 20})
		require.NoError(t, err)
	})
}

func TestDeleteGoal(t *testing.T) {
	repo := newFakeRepo()
	svc := goal.NewService(repo, &fakeActivity{})
	userID := uuid.New()
	g := seedGoal(repo, userID, goal.KindBooks, goal.DurationAnnual, 12, 5)

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.Delete(context.Background(), userID, uuid.New())
		assert.ErrorIs(t, err, goal.ErrGoalNotFound)
	})

	t.Run("Forbidden", func(t *testing.T) {
		_, err := svc.Delete(context.Background(), uuid.New(), g.ID)
		assert.ErrorIs(t, err, goal.ErrForbidden)
	})

	t.Run("ReturnsPriorState", func(t *testing.T) {
		response, err := svc.Delete(context.Background(), userID, g.ID)
		require.NoError(t, err)

		assert.Equal(t, g.ID, response.ID)
		assert.Equal(t, int64(5), response.CurrentAmount)

		_, err = svc.Delete(context.Background(), userID, g.ID)
		assert.ErrorIs(t, err, goal.ErrGoalNotFound)
	})
}

func TestResynchronize(t *testing.T) {
	t.Run("BooksRecomputedFromStore", func(t *testing.T) {
		repo := newFakeRepo()
		activity := &fakeActivity{finishedBooks: 12}
		svc := goal.NewService(repo, activity)
		userID := uuid.New()

		g := seedGoal(repo, userID, goal.KindBooks, goal.DurationAnnual, 12, 11)

		require.NoError(t, svc.Resynchronize(context.Background(), userID, 0))

		updated, err := repo.FindByID(g.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(12), updated.CurrentAmount)
		assert.True(t, updated.Completed(util.Today()))
		assert.True(t, updated.WindowEnd.Equal(g.WindowEnd), "window never changes")
	})

	t.Run("PagesAccumulateDelta", func(t *testing.T) {
		repo := newFakeRepo()
		svc := goal.NewService(repo, &fakeActivity{})
		userID := uuid.New()

		g := seedGoal(repo, userID, goal.KindPages, goal.DurationMonthly, 1000, 400)

		require.NoError(t, svc.Resynchronize(context.Background(), userID, 120))

		updated, err := repo.FindByID(g.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(520), updated.CurrentAmount)
	})

	t.Run("CompletedGoalsUntouched", func(t *testing.T) {
		repo := newFakeRepo()
		activity := &fakeActivity{finishedBooks: 2}
		svc := goal.NewService(repo, activity)
		userID := uuid.New()

		done := seedGoal(repo, userID, goal.KindBooks, goal.DurationAnnual, 10, 10)

		require.NoError(t, svc.Resynchronize(context.Background(), userID, 0))

		updated, err := repo.FindByID(done.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), updated.CurrentAmount, "reached goals are never lowered")
		assert.Zero(t, activity.countCalls)
	})

	t.Run("CorruptKindIsFatal", func(t *testing.T) {
		repo := newFakeRepo()
		svc := goal.NewService(repo, &fakeActivity{})
		userID := uuid.New()

		g := seedGoal(repo, userID, goal.KindBooks, goal.DurationAnnual, 10, 0)
		g.Kind = "CHAPTERS"

		err := svc.Resynchronize(context.Background(), userID, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unrecognized goal kind")
	})
}

func TestListGoals(t *testing.T) {
	repo := newFakeRepo()
	activity := &fakeActivity{finishedBooks: 4}
	svc := goal.NewService(repo, activity)
	userID := uuid.New()

	seedGoal(repo, userID, goal.KindBooks, goal.DurationAnnual, 12, 1)
	seedGoal(repo, userID, goal.KindPages, goal.DurationMonthly, 100, 100)

	t.Run("InProgressResyncsFirst", func(t *testing.T) {
		responses, err := svc.ListInProgress(context.Background(), userID)
		require.NoError(t, err)

		require.Len(t, responses, 1)
		assert.Equal(t, goal.KindBooks, responses[0].Kind)
		assert.Equal(t, int64(4), responses[0].CurrentAmount, "self-healing recompute before listing")
		assert.Equal(t, 1, activity.countCalls)
	})

	t.Run("Completed", func(t *testing.T) {
		responses, err := svc.ListCompleted(context.Background(), userID)
		require.NoError(t, err)

		require.Len(t, responses, 1)
		assert.Equal(t, goal.KindPages, responses[0].Kind)
		assert.True(t, responses[0].Completed)
		assert.Zero(t, responses[0].RemainingDays)
	})
}
