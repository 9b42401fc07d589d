package delivery

import (
	"net/http"
	"strconv"

	userdto "campus-notice-backend/internal/user/dto"
	"campus-notice-backend/internal/user/usecase"
	"campus-notice-backend/pkg/apperr"
	"campus-notice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUc usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req userdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.New(apperr.Validation, "student_id, password and name are required"))
		return
	}

	user, err := h.userUsecase.Register(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "registration successful", gin.H{
		"id":         strconv.FormatInt(user.ID, 10),
		"student_id": strconv.FormatInt(user.StudentID, 10),
		"name":       user.Name,
	})
}

func (h *UserHandler) Categories(c *gin.Context) {
	userID := c.GetInt64("userID")

	categories, err := h.userUsecase.Categories(userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "categories retrieved", gin.H{"categories": categories})
}

func (h *UserHandler) ToggleCategory(c *gin.Context) {
	userID := c.GetInt64("userID")

	result, err := h.userUsecase.ToggleCategory(userID, c.Param("categoryName"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "category "+result.Action, result)
}
