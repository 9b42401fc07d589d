package api

import (
	authUsecase "campus-notice-backend/internal/auth/usecase"
	chatUsecase "campus-notice-backend/internal/chat/usecase"
	notifUsecase "campus-notice-backend/internal/notification/usecase"
	postUsecase "campus-notice-backend/internal/post/usecase"
	userUsecase "campus-notice-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase  authUsecase.AuthUsecase
	userUsecase  userUsecase.UserUsecase
	postUsecase  postUsecase.PostUsecase
	notifUsecase notifUsecase.NotificationUsecase
	chatUsecase  chatUsecase.ChatUsecase
}

func NewHandler(authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, postUc postUsecase.PostUsecase, notifUc notifUsecase.NotificationUsecase, chatUc chatUsecase.ChatUsecase) *Handler {
	return &Handler{
		authUsecase:  authUc,
		userUsecase:  userUc,
		postUsecase:  postUc,
		notifUsecase: notifUc,
		chatUsecase:  chatUc,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.userUsecase, h.postUsecase, h.notifUsecase, h.chatUsecase)

	return r.Run(addr)
}
