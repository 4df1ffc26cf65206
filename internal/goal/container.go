package goal

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, activity ReadingActivity) *Container {
	repo := NewRepository(db)
	service := NewService(repo, activity)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
