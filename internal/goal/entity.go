package goal

import (
	"time"

	"github.com/google/uuid"

	util "github.com/gfmartins/booktrail/internal/utils"
)

type Goal struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID    `gorm:"column:user_id;not null;index" json:"user_id"`
	Kind          GoalKind     `gorm:"not null" json:"kind"`
	Duration      DurationKind `gorm:"not null" json:"duration"`
	TargetAmount  int          `gorm:"not null" json:"target_amount"`
	CurrentAmount int64        `gorm:"not null;default:0" json:"current_amount"`
	WindowStart   util.Date    `gorm:"type:date;not null" json:"window_start"`
	WindowEnd     util.Date    `gorm:"type:date;not null" json:"window_end"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Completed is derived, never stored: the goal is done once the target is
// reached or the window has passed.
func (g *Goal) Completed(today util.Date) bool {
	return g.CurrentAmount >= int64(g.TargetAmount) || today.After(g.WindowEnd)
}

func (g *Goal) RemainingDays(today util.Date) int {
	if g.Completed(today) {
		return 0
	}
	return util.DaysUntil(today, g.WindowEnd)
}

func (g *Goal) Percentage() int {
	if g.TargetAmount <= 0 {
		return 0
	}
	return int(g.CurrentAmount * 100 / int64(g.TargetAmount))
}
