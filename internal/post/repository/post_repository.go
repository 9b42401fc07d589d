package repository

import (
	"errors"
	"time"

	postdomain "campus-notice-backend/internal/post/domain"

	"gorm.io/gorm"
)

// PostRepository reads the crawled notices. The listing queries all fetch
// limit+1 rows below the cursor in descending-id order; the usecase windows
// the extra row away.
type PostRepository interface {
	FindByID(id int64) (*postdomain.Post, error)
	Urgent(today time.Time, max int) ([]postdomain.Post, error)
	ByCategory(category string, cursor int64, limit int) ([]postdomain.Post, error)
	ByCategories(categories []string, cursor int64, limit int) ([]postdomain.Post, error)
	ByNotified(userID int64, cursor int64, limit int) ([]postdomain.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) FindByID(id int64) (*postdomain.Post, error) {
	var post postdomain.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Urgent selects the posts closing soonest: end date on or after today,
// ascending end date, capped at max.
func (r *postRepository) Urgent(today time.Time, max int) ([]postdomain.Post, error) {
	var posts []postdomain.Post
	err := r.db.
		Where("end_date >= ?", today).
		Order("end_date ASC").
		Limit(max).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ByCategory(category string, cursor int64, limit int) ([]postdomain.Post, error) {
	query := r.db.Where("category = ?", category)
	return fetchWindow(query, cursor, limit)
}

func (r *postRepository) ByCategories(categories []string, cursor int64, limit int) ([]postdomain.Post, error) {
	query := r.db.Where("category IN ?", categories)
	return fetchWindow(query, cursor, limit)
}

func (r *postRepository) ByNotified(userID int64, cursor int64, limit int) ([]postdomain.Post, error) {
	query := r.db.
		Joins("JOIN notifications ON notifications.post_id = posts.id").
		Where("notifications.user_id = ?", userID)
	return fetchWindow(query, cursor, limit)
}

func fetchWindow(query *gorm.DB, cursor int64, limit int) ([]postdomain.Post, error) {
	if cursor > 0 {
		query = query.Where("posts.id < ?", cursor)
	}

	var posts []postdomain.Post
	err := query.
		Order("posts.id DESC").
		Limit(limit + 1).
		Find(&posts).Error
	return posts, err
}
