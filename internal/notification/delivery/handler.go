package delivery

import (
	"net/http"
	"strconv"

	"campus-notice-backend/internal/notification/usecase"
	"campus-notice-backend/pkg/apperr"
	"campus-notice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notifUc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notifUsecase: notifUc}
}

func (h *NotificationHandler) Toggle(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	result, err := h.notifUsecase.Toggle(c.GetInt64("userID"), postID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "notification "+result.Action, result)
}

func (h *NotificationHandler) Status(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	result, err := h.notifUsecase.Status(c.GetInt64("userID"), postID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "notification status retrieved", result)
}

func (h *NotificationHandler) SubscribersByPost(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	result, err := h.notifUsecase.SubscribersByPost(postID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "subscribers retrieved", result)
}

func postIDParam(c *gin.Context) (int64, error) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil || postID <= 0 {
		return 0, apperr.New(apperr.Validation, "post_id must be a number")
	}
	return postID, nil
}
