package book

type CreateBookDTO struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	PageCount   int    `json:"page_count"`
	Description string `json:"description"`
}

type UpdateBookDTO struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Genre       *string `json:"genre"`
	PageCount   *int    `json:"page_count"`
	Description *string `json:"description"`
}
