package recap

import (
	"github.com/gfmartins/booktrail/internal/goal"
	"github.com/gfmartins/booktrail/internal/library"
)

type YearRecapResponse struct {
	Year          int                  `json:"year"`
	BooksFinished int64                `json:"books_finished"`
	PagesRead     int64                `json:"pages_read"`
	TopGenres     []library.GenreCount `json:"top_genres"`
	TopRatedBooks []library.RatedBook  `json:"top_rated_books"`
	AnnualGoals   []goal.GoalResponse  `json:"annual_goals"`
}
