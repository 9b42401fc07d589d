package repository

import (
	"errors"
	"time"

	authdomain "campus-notice-backend/internal/auth/domain"
	userdomain "campus-notice-backend/internal/user/domain"
	"campus-notice-backend/pkg/database"
	"campus-notice-backend/pkg/toggle"

	"gorm.io/gorm"
)

// FollowedCategory is one row of a user's interest list: the category plus
// when the user started following it.
type FollowedCategory struct {
	ID         int64
	Name       string
	FollowedAt time.Time
}

type UserRepository interface {
	CreateUser(user *authdomain.User, categoryNames []string) error
	FollowedCategories(userID int64) ([]FollowedCategory, error)
	CategoryNames(userID int64) ([]string, error)
	ToggleCategory(userID int64, categoryName string) (toggle.Action, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser registers the user and attaches their initial interest
// categories in one transaction. Categories are find-or-create: referencing
// a name that does not exist yet brings it into being.
func (r *userRepository) CreateUser(user *authdomain.User, categoryNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		for _, name := range categoryNames {
			category, err := findOrCreateCategory(tx, name)
			if err != nil {
				return err
			}

			link := &userdomain.UserCategory{
				UserID:     user.ID,
				CategoryID: category.ID,
			}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) FollowedCategories(userID int64) ([]FollowedCategory, error) {
	var rows []struct {
		ID        int64
		Name      string
		CreatedAt time.Time
	}
	err := r.db.Model(&userdomain.UserCategory{}).
		Select("categories.id, categories.name, user_categories.created_at").
		Joins("JOIN categories ON categories.id = user_categories.category_id").
		Where("user_categories.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	followed := make([]FollowedCategory, 0, len(rows))
	for _, row := range rows {
		followed = append(followed, FollowedCategory{ID: row.ID, Name: row.Name, FollowedAt: row.CreatedAt})
	}
	return followed, nil
}

// CategoryNames returns just the names of the user's followed categories;
// the interest-post listing filters by these.
func (r *userRepository) CategoryNames(userID int64) ([]string, error) {
	var names []string
	err := r.db.Model(&userdomain.UserCategory{}).
		Select("categories.name").
		Joins("JOIN categories ON categories.id = user_categories.category_id").
		Where("user_categories.user_id = ?", userID).
		Scan(&names).Error
	return names, err
}

// ToggleCategory flips whether the user follows the named category. The
// category itself is resolved (or created) inside the same transaction as
// the flip.
func (r *userRepository) ToggleCategory(userID int64, categoryName string) (toggle.Action, error) {
	var categoryID int64

	return toggle.Flip(r.db,
		func(tx *gorm.DB) (bool, error) {
			category, err := findOrCreateCategory(tx, categoryName)
			if err != nil {
				return false, err
			}
			categoryID = category.ID

			var link userdomain.UserCategory
			err = tx.Where("user_id = ? AND category_id = ?", userID, categoryID).First(&link).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return false, nil
				}
				return false, err
			}
			return true, nil
		},
		func(tx *gorm.DB) error {
			return tx.Create(&userdomain.UserCategory{UserID: userID, CategoryID: categoryID}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Where("user_id = ? AND category_id = ?", userID, categoryID).Delete(&userdomain.UserCategory{}).Error
		},
	)
}

// findOrCreateCategory resolves a category by name, creating it if absent.
// A concurrent create of the same name loses the unique-index race and falls
// back to reading the winner's row.
func findOrCreateCategory(tx *gorm.DB, name string) (*userdomain.Category, error) {
	var category userdomain.Category
	err := tx.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = userdomain.Category{Name: name}
	if err := tx.Create(&category).Error; err != nil {
		if database.IsDuplicateKey(err) {
			var existing userdomain.Category
			if err := tx.Where("name = ?", name).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &category, nil
}
