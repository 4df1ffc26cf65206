package library

import "github.com/google/uuid"

type SetStatusDTO struct {
	Status string `json:"status"`
}

type SetProgressDTO struct {
	Amount int    `json:"amount"`
	Kind   string `json:"kind"`
}

type RateDTO struct {
	Rating float64 `json:"rating"`
}

type ReviewDTO struct {
	Review string `json:"review"`
}

// GenreCount and RatedBook are aggregate rows produced by the store for
// the year recap.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

type RatedBook struct {
	BookID uuid.UUID `json:"book_id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	Rating float64   `json:"rating"`
}
