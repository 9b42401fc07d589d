package dto

type PostResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Summary   string  `json:"summary"`
	Link      string  `json:"link"`
	Image     *string `json:"image"`
	Category  string  `json:"category"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type UrgentPostResponse struct {
	PostResponse
	DDay int `json:"d_day"`
}

type PostPageResponse struct {
	Posts      []PostResponse `json:"posts"`
	NextCursor *string        `json:"next_cursor"`
	HasMore    bool           `json:"has_more"`
	Count      int            `json:"count"`
}

type UrgentPostsResponse struct {
	Posts []UrgentPostResponse `json:"posts"`
	Count int                  `json:"count"`
}
