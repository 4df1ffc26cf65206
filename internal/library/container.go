package library

import (
	"github.com/gfmartins/booktrail/internal/book"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(repo Repository, bookRepo book.Repository, goals GoalSyncer) *Container {
	service := NewService(repo, bookRepo, goals)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
