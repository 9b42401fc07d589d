package domain

import "time"

// Notification marks "notify this user about this post". The (user, post)
// pair is unique; existence is the whole state.
type Notification struct {
	ID        int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id,string" gorm:"uniqueIndex:idx_user_post;not null"`
	PostID    int64     `json:"post_id,string" gorm:"uniqueIndex:idx_user_post;not null"`
	CreatedAt time.Time `json:"created_at"`
}
