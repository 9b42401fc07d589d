package repository

import (
	"errors"

	notifdomain "campus-notice-backend/internal/notification/domain"
	"campus-notice-backend/pkg/toggle"

	"gorm.io/gorm"
)

// Subscriber is a user who asked to be notified about a post.
type Subscriber struct {
	ID        int64
	StudentID int64
	Name      string
}

type NotificationRepository interface {
	Toggle(userID, postID int64) (toggle.Action, error)
	Exists(userID, postID int64) (bool, error)
	SubscribersByPost(postID int64) ([]Subscriber, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Toggle flips the subscription for the (user, post) pair.
func (r *notificationRepository) Toggle(userID, postID int64) (toggle.Action, error) {
	return toggle.Flip(r.db,
		func(tx *gorm.DB) (bool, error) {
			return notificationExists(tx, userID, postID)
		},
		func(tx *gorm.DB) error {
			return tx.Create(&notifdomain.Notification{UserID: userID, PostID: postID}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&notifdomain.Notification{}).Error
		},
	)
}

func (r *notificationRepository) Exists(userID, postID int64) (bool, error) {
	return notificationExists(r.db, userID, postID)
}

func (r *notificationRepository) SubscribersByPost(postID int64) ([]Subscriber, error) {
	var subscribers []Subscriber
	err := r.db.Model(&notifdomain.Notification{}).
		Select("users.id, users.student_id, users.name").
		Joins("JOIN users ON users.id = notifications.user_id").
		Where("notifications.post_id = ?", postID).
		Scan(&subscribers).Error
	return subscribers, err
}

func notificationExists(tx *gorm.DB, userID, postID int64) (bool, error) {
	var notification notifdomain.Notification
	err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
