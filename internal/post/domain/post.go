package domain

import "time"

// Post is a crawled campus notice. Posts are produced by an external
// ingestion pipeline; this service only reads them. Category is the
// denormalized category name, not a foreign key.
type Post struct {
	ID        int64      `json:"id,string" gorm:"primaryKey;autoIncrement"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Content   string     `json:"content"`
	Summary   string     `json:"summary"`
	Image     *string    `json:"image"`
	Category  string     `json:"category" gorm:"index"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
