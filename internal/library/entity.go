package library

import (
	"time"

	"github.com/google/uuid"

	"github.com/gfmartins/booktrail/internal/book"
	util "github.com/gfmartins/booktrail/internal/utils"
)

// LibraryEntry is one user's reading record for one book. The (user, book)
// pair is unique and immutable once created.
type LibraryEntry struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID     `gorm:"column:user_id;not null;uniqueIndex:idx_entry_user_book" json:"user_id"`
	BookID        uuid.UUID     `gorm:"column:book_id;not null;uniqueIndex:idx_entry_user_book" json:"book_id"`
	Book          book.Book     `gorm:"foreignKey:BookID" json:"-"`
	Status        ReadingStatus `gorm:"not null" json:"status"`
	ProgressValue int           `gorm:"not null;default:0" json:"progress_value"`
	ProgressKind  ProgressKind  `gorm:"not null" json:"progress_kind"`
	Rating        float64       `gorm:"not null;default:0" json:"rating"`
	Review        string        `gorm:"type:text" json:"review,omitempty"`
	DateStarted   *util.Date    `gorm:"type:date" json:"date_started,omitempty"`
	DateFinished  *util.Date    `gorm:"type:date" json:"date_finished,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (LibraryEntry) TableName() string {
	return "library_entries"
}
