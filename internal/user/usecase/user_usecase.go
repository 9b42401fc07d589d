package usecase

import (
	"strconv"
	"time"

	authdomain "campus-notice-backend/internal/auth/domain"
	authrepo "campus-notice-backend/internal/auth/repository"
	userdto "campus-notice-backend/internal/user/dto"
	"campus-notice-backend/internal/user/repository"
	"campus-notice-backend/pkg/apperr"
	"campus-notice-backend/pkg/database"
)

type UserUsecase interface {
	Register(req *userdto.RegisterRequest) (*authdomain.User, error)
	Categories(userID int64) ([]userdto.CategoryResponse, error)
	ToggleCategory(userID int64, categoryName string) (*userdto.ToggleCategoryResponse, error)
}

type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) Register(req *userdto.RegisterRequest) (*authdomain.User, error) {
	sid, err := strconv.ParseInt(req.StudentID, 10, 64)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "student_id must be a number")
	}

	hashed, err := authrepo.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		StudentID:            sid,
		Password:             hashed,
		Name:                 req.Name,
		FirstTrack:           req.FirstTrack,
		SecondTrack:          req.SecondTrack,
		IsNotificationAgreed: req.IsNotificationAgreed,
	}

	if err := u.userRepo.CreateUser(user, req.CategoryNames); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, apperr.Wrap(apperr.Conflict, "duplicate student number", err)
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Categories(userID int64) ([]userdto.CategoryResponse, error) {
	followed, err := u.userRepo.FollowedCategories(userID)
	if err != nil {
		return nil, err
	}

	categories := make([]userdto.CategoryResponse, 0, len(followed))
	for _, fc := range followed {
		categories = append(categories, userdto.CategoryResponse{
			ID:        strconv.FormatInt(fc.ID, 10),
			Name:      fc.Name,
			CreatedAt: fc.FollowedAt.Format(time.RFC3339),
		})
	}
	return categories, nil
}

func (u *userUsecase) ToggleCategory(userID int64, categoryName string) (*userdto.ToggleCategoryResponse, error) {
	if categoryName == "" {
		return nil, apperr.New(apperr.Validation, "category name is required")
	}

	action, err := u.userRepo.ToggleCategory(userID, categoryName)
	if err != nil {
		return nil, err
	}
	return &userdto.ToggleCategoryResponse{
		Action:       string(action),
		CategoryName: categoryName,
	}, nil
}
