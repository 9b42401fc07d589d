package delivery

import (
	"net/http"
	"strconv"
	"time"

	authdomain "campus-notice-backend/internal/auth/domain"
	authdto "campus-notice-backend/internal/auth/dto"
	"campus-notice-backend/internal/auth/usecase"
	userdto "campus-notice-backend/internal/user/dto"
	userUsecase "campus-notice-backend/internal/user/usecase"
	"campus-notice-backend/pkg/apperr"
	"campus-notice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	userUsecase userUsecase.UserUsecase
}

func NewAuthHandler(authUc usecase.AuthUsecase, userUc userUsecase.UserUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUc,
		userUsecase: userUc,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.New(apperr.Validation, "student_id is required"))
		return
	}

	tokens, err := h.authUsecase.Login(req.StudentID, req.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "login successful", tokens)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.New(apperr.Validation, "refresh_token is required"))
		return
	}

	tokens, err := h.authUsecase.Refresh(req.RefreshToken)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "token refreshed successfully", tokens)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// The body is optional: a client that already cleared its token still
	// gets a clean logout.
	var req authdto.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.authUsecase.Logout(req.RefreshToken); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "logout successful", nil)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)

	categories, err := h.userUsecase.Categories(user.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", userdto.ProfileResponse{
		ID:                   strconv.FormatInt(user.ID, 10),
		StudentID:            strconv.FormatInt(user.StudentID, 10),
		Name:                 user.Name,
		FirstTrack:           user.FirstTrack,
		SecondTrack:          user.SecondTrack,
		IsNotificationAgreed: user.IsNotificationAgreed,
		Categories:           categories,
		CreatedAt:            user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            user.UpdatedAt.Format(time.RFC3339),
	})
}
