package book

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(b *Book) error
	FindByID(id uuid.UUID) (*Book, error)
	FindAll() ([]Book, error)
	Update(b *Book) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(b *Book) error {
	return r.db.Create(b).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Book, error) {
	var b Book
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindAll() ([]Book, error) {
	var books []Book
	if err := r.db.Order("title").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) Update(b *Book) error {
	return r.db.Save(b).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Book{}, "id = ?", id).Error
}
