package delivery

import (
	"net/http"

	chatdto "campus-notice-backend/internal/chat/dto"
	"campus-notice-backend/internal/chat/usecase"
	"campus-notice-backend/pkg/apperr"
	"campus-notice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatHandler(chatUc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUc}
}

func (h *ChatHandler) Ask(c *gin.Context) {
	var req chatdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.New(apperr.Validation, "question is required"))
		return
	}

	result, err := h.chatUsecase.Ask(c.Request.Context(), req.Question)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "answer retrieved", result)
}
