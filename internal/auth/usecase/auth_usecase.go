package usecase

import (
	"log"
	"strconv"
	"time"

	authdomain "campus-notice-backend/internal/auth/domain"
	authdto "campus-notice-backend/internal/auth/dto"
	"campus-notice-backend/internal/auth/repository"
	"campus-notice-backend/internal/auth/token"
	"campus-notice-backend/pkg/apperr"
)

// AuthUsecase is the session manager: login, refresh rotation, logout.
type AuthUsecase interface {
	Login(studentID, password string) (*authdto.TokenResponse, error)
	Refresh(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	LogoutAll(userID int64) error
	CleanupExpiredTokens() (int64, error)
	ValidateAccess(accessToken string) (*authdomain.User, error)
}

type authUsecase struct {
	userRepo repository.UserRepository
	codec    *token.Codec
}

func NewAuthUsecase(userRepo repository.UserRepository, codec *token.Codec) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		codec:    codec,
	}
}

// Login authenticates by student number. An empty password skips the hash
// check: that path carries future non-password auth flows. NotFound and
// Unauthorized stay distinct classifications but share one message so the
// response body does not reveal whether the student number exists.
func (u *authUsecase) Login(studentID, password string) (*authdto.TokenResponse, error) {
	sid, err := strconv.ParseInt(studentID, 10, 64)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "student_id must be a number")
	}

	user, err := u.userRepo.FindByStudentID(sid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "invalid student number or password")
	}

	if password != "" && !repository.CheckPasswordHash(password, user.Password) {
		return nil, apperr.New(apperr.Unauthorized, "invalid student number or password")
	}

	resp, err := u.issueTokens(user.ID, user.StudentID)
	if err != nil {
		return nil, err
	}
	resp.StudentID = strconv.FormatInt(user.StudentID, 10)
	return resp, nil
}

// Refresh rotates a refresh token: verify, check the stored row, then replace
// it with a fresh one. The old token is single-use; replaying it after a
// successful refresh fails even though its signature is still valid.
func (u *authUsecase) Refresh(oldToken string) (*authdto.TokenResponse, error) {
	payload, ok := u.codec.Verify(oldToken)
	if !ok {
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired refresh token")
	}

	stored, err := u.userRepo.FindRefreshToken(oldToken)
	if err != nil {
		return nil, err
	}

	if stored == nil || stored.UserID != payload.UserID || stored.ExpiresAt.Before(time.Now()) {
		// A stale or mismatched row is dead either way; drop it.
		if stored != nil {
			if _, err := u.userRepo.DeleteRefreshToken(oldToken); err != nil {
				log.Printf("failed to delete stale refresh token: %v", err)
			}
		}
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired refresh token")
	}

	if _, err := u.userRepo.DeleteRefreshToken(oldToken); err != nil {
		return nil, err
	}

	return u.issueTokens(payload.UserID, payload.StudentID)
}

// Logout deletes the presented refresh token. A missing argument or an
// already-absent row is a valid "client cleared it first" case, not an error.
func (u *authUsecase) Logout(refreshToken string) error {
	if refreshToken == "" {
		log.Println("logout without a refresh token (client may have already cleared it)")
		return nil
	}

	deleted, err := u.userRepo.DeleteRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	if !deleted {
		log.Println("logout: refresh token to delete was not found")
	}
	return nil
}

// LogoutAll revokes every session of a user (force logout everywhere).
func (u *authUsecase) LogoutAll(userID int64) error {
	return u.userRepo.DeleteRefreshTokensByUser(userID)
}

func (u *authUsecase) CleanupExpiredTokens() (int64, error) {
	return u.userRepo.DeleteExpiredRefreshTokens()
}

func (u *authUsecase) ValidateAccess(accessToken string) (*authdomain.User, error) {
	payload, ok := u.codec.Verify(accessToken)
	if !ok {
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired token")
	}

	user, err := u.userRepo.FindByID(payload.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired token")
	}
	return user, nil
}

func (u *authUsecase) issueTokens(userID, studentID int64) (*authdto.TokenResponse, error) {
	accessToken, err := u.codec.IssueAccess(userID, studentID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.codec.IssueRefresh(userID, studentID)
	if err != nil {
		return nil, err
	}

	entity := &authdomain.RefreshToken{
		Token:     refreshToken,
		UserID:    userID,
		ExpiresAt: time.Now().Add(u.codec.RefreshTTL()),
	}
	if err := u.userRepo.SaveRefreshToken(entity); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
