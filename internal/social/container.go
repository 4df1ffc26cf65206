package social

import (
	"gorm.io/gorm"

	"github.com/gfmartins/booktrail/internal/user"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, userRepo user.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, userRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
