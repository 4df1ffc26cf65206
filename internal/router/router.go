package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gfmartins/booktrail/internal/auth"
	"github.com/gfmartins/booktrail/internal/book"
	"github.com/gfmartins/booktrail/internal/goal"
	"github.com/gfmartins/booktrail/internal/library"
	"github.com/gfmartins/booktrail/internal/middlewares"
	"github.com/gfmartins/booktrail/internal/recap"
	"github.com/gfmartins/booktrail/internal/social"
	"github.com/gfmartins/booktrail/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	BookHandler    *book.Handler
	LibraryHandler *library.Handler
	GoalHandler    *goal.Handler
	RecapHandler   *recap.Handler
	SocialHandler  *social.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/books", book.Routes(cfg.BookHandler))
		r.Mount("/library", library.Routes(cfg.LibraryHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/recap", recap.Routes(cfg.RecapHandler))
		r.Mount("/social", social.Routes(cfg.SocialHandler))
	})

	return r
}
