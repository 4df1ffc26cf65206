package container

import (
	"context"
	"log"
	"os"

	"github.com/gfmartins/booktrail/internal/auth"
	"github.com/gfmartins/booktrail/internal/book"
	"github.com/gfmartins/booktrail/internal/config"
	"github.com/gfmartins/booktrail/internal/goal"
	"github.com/gfmartins/booktrail/internal/library"
	"github.com/gfmartins/booktrail/internal/recap"
	"github.com/gfmartins/booktrail/internal/social"
	"github.com/gfmartins/booktrail/internal/user"
)

type Container struct {
	UserContainer    *user.Container
	BookContainer    *book.Container
	LibraryContainer *library.Container
	GoalContainer    *goal.Container
	RecapContainer   *recap.Container
	SocialContainer  *social.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&book.Book{},
		&library.LibraryEntry{},
		&goal.Goal{},
		&social.Follow{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewContainer(config.DB)
	bookContainer := book.NewContainer(config.DB)

	// The library repository doubles as the goal engine's view of reading
	// activity; the goal service feeds resynchronization back into the
	// library service.
	libraryRepo := library.NewRepository(config.DB)
	goalContainer := goal.NewContainer(config.DB, libraryRepo)
	libraryContainer := library.NewContainer(libraryRepo, bookContainer.Repo, goalContainer.Service)

	recapContainer := recap.NewContainer(libraryRepo, goalContainer.Service)
	socialContainer := social.NewContainer(config.DB, userContainer.Repo)

	return &Container{
		UserContainer:    userContainer,
		BookContainer:    bookContainer,
		LibraryContainer: libraryContainer,
		GoalContainer:    goalContainer,
		RecapContainer:   recapContainer,
		SocialContainer:  socialContainer,
	}
}
