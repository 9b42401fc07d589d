package delivery

import (
	"net/http"
	"strconv"

	"campus-notice-backend/internal/post/usecase"
	"campus-notice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUsecase usecase.PostUsecase
}

func NewPostHandler(postUc usecase.PostUsecase) *PostHandler {
	return &PostHandler{postUsecase: postUc}
}

func (h *PostHandler) Urgent(c *gin.Context) {
	result, err := h.postUsecase.Urgent()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "urgent posts retrieved", result)
}

func (h *PostHandler) ByCategory(c *gin.Context) {
	result, err := h.postUsecase.ByCategory(c.Param("category"), c.Query("cursor"), limitQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "posts retrieved", result)
}

func (h *PostHandler) ByNotified(c *gin.Context) {
	result, err := h.postUsecase.ByNotified(c.GetInt64("userID"), c.Query("cursor"), limitQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "notified posts retrieved", result)
}

func (h *PostHandler) ByInterest(c *gin.Context) {
	result, err := h.postUsecase.ByInterest(c.GetInt64("userID"), c.Query("cursor"), limitQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "interest posts retrieved", result)
}

// limitQuery reads a page size; 0 lets the usecase apply the per-endpoint
// default.
func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
