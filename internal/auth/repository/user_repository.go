package repository

import (
	"errors"
	"time"

	authdomain "campus-notice-backend/internal/auth/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository persists users and their refresh tokens. "Not found" is
// reported as a nil entity, never an error, so callers can classify absence
// themselves.
type UserRepository interface {
	FindByStudentID(studentID int64) (*authdomain.User, error)
	FindByID(id int64) (*authdomain.User, error)

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) (bool, error)
	DeleteRefreshTokensByUser(userID int64) error
	DeleteExpiredRefreshTokens() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByStudentID(studentID int64) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("student_id = ?", studentID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id int64) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// SaveRefreshToken inserts the new token and, in the same transaction, prunes
// the user's already-expired tokens. Valid tokens on other devices survive.
func (r *userRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND expires_at < ?", token.UserID, time.Now()).Delete(&authdomain.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *userRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	var refreshToken authdomain.RefreshToken
	err := r.db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

// DeleteRefreshToken reports whether a row was actually removed. Deleting an
// absent token is not an error.
func (r *userRepository) DeleteRefreshToken(token string) (bool, error) {
	result := r.db.Where("token = ?", token).Delete(&authdomain.RefreshToken{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *userRepository) DeleteRefreshTokensByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&authdomain.RefreshToken{}).Error
}

// DeleteExpiredRefreshTokens is the cleanup primitive; it is invoked
// externally (cron or ops script), not by an in-process timer.
func (r *userRepository) DeleteExpiredRefreshTokens() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now()).Delete(&authdomain.RefreshToken{})
	return result.RowsAffected, result.Error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
