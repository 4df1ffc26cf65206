package library

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	util "github.com/gfmartins/booktrail/internal/utils"
)

type Repository interface {
	Create(e *LibraryEntry) error
	Update(e *LibraryEntry) error
	Delete(e *LibraryEntry) error
	FindByUserAndBook(userID, bookID uuid.UUID) (*LibraryEntry, error)
	FindAllByUser(userID uuid.UUID, status *ReadingStatus) ([]LibraryEntry, error)

	// Aggregates consumed by the goal engine and the year recap.
	CountFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error)
	SumPagesFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error)
	TopGenres(userID uuid.UUID, start, end util.Date, limit int) ([]GenreCount, error)
	TopRatedBooks(userID uuid.UUID, start, end util.Date, limit int) ([]RatedBook, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(e *LibraryEntry) error {
	return r.db.Create(e).Error
}

func (r *repository) Update(e *LibraryEntry) error {
	return r.db.Save(e).Error
}

func (r *repository) Delete(e *LibraryEntry) error {
	return r.db.Delete(e).Error
}

func (r *repository) FindByUserAndBook(userID, bookID uuid.UUID) (*LibraryEntry, error) {
	var e LibraryEntry
	if err := r.db.First(&e, "user_id = ? AND book_id = ?", userID, bookID).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAllByUser(userID uuid.UUID, status *ReadingStatus) ([]LibraryEntry, error) {
	q := r.db.Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var entries []LibraryEntry
	if err := q.Order("updated_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) CountFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error) {
	var count int64
	err := r.db.Model(&LibraryEntry{}).
		Where("user_id = ? AND status = ? AND date_finished BETWEEN ? AND ?",
			userID, StatusRead, start, end).
		Count(&count).Error
	return count, err
}

func (r *repository) SumPagesFinishedInWindow(userID uuid.UUID, start, end util.Date) (int64, error) {
	var total int64
	err := r.db.Model(&LibraryEntry{}).
		Select("COALESCE(SUM(books.page_count), 0)").
		Joins("JOIN books ON books.id = library_entries.book_id").
		Where("library_entries.user_id = ? AND library_entries.status = ? AND library_entries.date_finished BETWEEN ? AND ?",
			userID, StatusRead, start, end).
		Scan(&total).Error
	return total, err
}

func (r *repository) TopGenres(userID uuid.UUID, start, end util.Date, limit int) ([]GenreCount, error) {
	var rows []GenreCount
	err := r.db.Model(&LibraryEntry{}).
		Select("books.genre AS genre, COUNT(*) AS count").
		Joins("JOIN books ON books.id = library_entries.book_id").
		Where("library_entries.user_id = ? AND library_entries.status = ? AND library_entries.date_finished BETWEEN ? AND ?",
			userID, StatusRead, start, end).
		Group("books.genre").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TopRatedBooks(userID uuid.UUID, start, end util.Date, limit int) ([]RatedBook, error) {
	var rows []RatedBook
	err := r.db.Model(&LibraryEntry{}).
		Select("library_entries.book_id AS book_id, books.title AS title, books.author AS author, library_entries.rating AS rating").
		Joins("JOIN books ON books.id = library_entries.book_id").
		Where("library_entries.user_id = ? AND library_entries.status = ? AND library_entries.rating > 0 AND library_entries.date_finished BETWEEN ? AND ?",
			userID, StatusRead, start, end).
		Order("library_entries.rating DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
