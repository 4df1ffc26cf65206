package recap

import (
	"github.com/gfmartins/booktrail/internal/goal"
	"github.com/gfmartins/booktrail/internal/library"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(libraryRepo library.Repository, goalService goal.Service) *Container {
	service := NewService(libraryRepo, goalService)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
