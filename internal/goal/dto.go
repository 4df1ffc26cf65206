package goal

import (
	"time"

	"github.com/google/uuid"

	util "github.com/gfmartins/booktrail/internal/utils"
)

type CreateGoalDTO struct {
	Kind         string `json:"kind"`
	Duration     string `json:"duration"`
	TargetAmount int    `json:"target_amount"`
}

type GoalResponse struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user_id"`
	Kind          GoalKind     `json:"kind"`
	Duration      DurationKind `json:"duration"`
	TargetAmount  int          `json:"target_amount"`
	CurrentAmount int64        `json:"current_amount"`
	WindowStart   util.Date    `json:"window_start"`
	WindowEnd     util.Date    `json:"window_end"`
	Completed     bool         `json:"completed"`
	RemainingDays int          `json:"remaining_days"`
	Percentage    int          `json:"percentage"`
	CreatedAt     time.Time    `json:"created_at"`
}

func toResponse(g *Goal, today util.Date) *GoalResponse {
	return &GoalResponse{
		ID:            g.ID,
		UserID:        g.UserID,
		Kind:          g.Kind,
		Duration:      g.Duration,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		WindowStart:   g.WindowStart,
		WindowEnd:     g.WindowEnd,
		Completed:     g.Completed(today),
		RemainingDays: g.RemainingDays(today),
		Percentage:    g.Percentage(),
		CreatedAt:     g.CreatedAt,
	}
}
