package social

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gfmartins/booktrail/internal/user"
)

type Repository interface {
	Create(f *Follow) error
	Delete(followerID, followeeID uuid.UUID) (bool, error)
	Exists(followerID, followeeID uuid.UUID) (bool, error)
	FindFollowers(userID uuid.UUID) ([]user.User, error)
	FindFollowing(userID uuid.UUID) ([]user.User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(f *Follow) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(f).Error
	})
}

// Delete reports whether an edge was actually removed.
func (r *repository) Delete(followerID, followeeID uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Follow{}, "follower_id = ? AND followee_id = ?", followerID, followeeID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *repository) Exists(followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindFollowers(userID uuid.UUID) ([]user.User, error) {
	var users []user.User
	err := r.db.Model(&user.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *repository) FindFollowing(userID uuid.UUID) ([]user.User, error) {
	var users []user.User
	err := r.db.Model(&user.User{}).
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	return users, err
}
