package domain

import "time"

// Category is created lazily the first time a name is referenced.
type Category struct {
	ID        int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCategory links a user to a category they follow. Existence is binary:
// the pair is unique and carries no weight.
type UserCategory struct {
	ID         int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	UserID     int64     `json:"user_id,string" gorm:"uniqueIndex:idx_user_category;not null"`
	CategoryID int64     `json:"category_id,string" gorm:"uniqueIndex:idx_user_category;not null"`
	CreatedAt  time.Time `json:"created_at"`
}
