package domain

import "time"

// User is a registered student. StudentID is the public login identifier;
// ID is the store-assigned primary key and never leaves the service except
// as a decimal string.
type User struct {
	ID                   int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	StudentID            int64     `json:"student_id,string" gorm:"uniqueIndex;not null"`
	Password             string    `json:"-"` // bcrypt hash, never serialized
	Name                 string    `json:"name"`
	FirstTrack           string    `json:"first_track"`
	SecondTrack          string    `json:"second_track"`
	IsNotificationAgreed bool      `json:"is_notification_agreed"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// RefreshToken is one rotatable session credential. A user may hold several
// at once (multi-device); each is revoked independently.
type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    int64     `json:"user_id,string" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
