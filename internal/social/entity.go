package social

import (
	"time"

	"github.com/google/uuid"
)

// Follow is one directed edge of the follower graph. Both directions of a
// mutual follow are independent rows.
type Follow struct {
	FollowerID uuid.UUID `gorm:"column:follower_id;primaryKey;type:uuid" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"column:followee_id;primaryKey;type:uuid" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
