package api

import (
	"net/http"

	authDelivery "campus-notice-backend/internal/auth/delivery"
	authUsecase "campus-notice-backend/internal/auth/usecase"
	chatDelivery "campus-notice-backend/internal/chat/delivery"
	chatUsecase "campus-notice-backend/internal/chat/usecase"
	notifDelivery "campus-notice-backend/internal/notification/delivery"
	notifUsecase "campus-notice-backend/internal/notification/usecase"
	postDelivery "campus-notice-backend/internal/post/delivery"
	postUsecase "campus-notice-backend/internal/post/usecase"
	userDelivery "campus-notice-backend/internal/user/delivery"
	userUsecase "campus-notice-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, postUc postUsecase.PostUsecase, notifUc notifUsecase.NotificationUsecase, chatUc chatUsecase.ChatUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc, userUc)
	userHandler := userDelivery.NewUserHandler(userUc)
	postHandler := postDelivery.NewPostHandler(postUc)
	notifHandler := notifDelivery.NewNotificationHandler(notifUc)
	chatHandler := chatDelivery.NewChatHandler(chatUc)

	requireAuth := authDelivery.AuthMiddleware(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh-token", authHandler.Refresh)
			auth.POST("/logout", requireAuth, authHandler.Logout)
			auth.GET("/profile", requireAuth, authHandler.Profile)
		}

		// User routes
		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.POST("/login", authHandler.Login)
			users.GET("/categories", requireAuth, userHandler.Categories)
			users.PUT("/categories/:categoryName", requireAuth, userHandler.ToggleCategory)
		}

		// Post routes (protected)
		posts := api.Group("/posts")
		posts.Use(requireAuth)
		{
			posts.GET("/urgent", postHandler.Urgent)
			posts.GET("/category/:category", postHandler.ByCategory)
			posts.GET("/notifications", postHandler.ByNotified)
			posts.GET("/interested", postHandler.ByInterest)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(requireAuth)
		{
			notifications.PUT("/:post_id", notifHandler.Toggle)
			notifications.GET("/:post_id", notifHandler.SubscribersByPost)
			notifications.GET("/:post_id/status", notifHandler.Status)
		}

		// Chat proxy
		api.POST("/chat", chatHandler.Ask)
	}
}
