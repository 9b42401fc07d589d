package main

import (
	"log"

	api "campus-notice-backend/cmd/api"
	authdomain "campus-notice-backend/internal/auth/domain"
	authRepo "campus-notice-backend/internal/auth/repository"
	"campus-notice-backend/internal/auth/token"
	authUsecase "campus-notice-backend/internal/auth/usecase"
	chatUsecase "campus-notice-backend/internal/chat/usecase"
	notifdomain "campus-notice-backend/internal/notification/domain"
	notifRepo "campus-notice-backend/internal/notification/repository"
	notifUsecase "campus-notice-backend/internal/notification/usecase"
	postdomain "campus-notice-backend/internal/post/domain"
	postRepo "campus-notice-backend/internal/post/repository"
	postUsecase "campus-notice-backend/internal/post/usecase"
	userdomain "campus-notice-backend/internal/user/domain"
	userRepo "campus-notice-backend/internal/user/repository"
	userUsecase "campus-notice-backend/internal/user/usecase"
	"campus-notice-backend/pkg/chat"
	"campus-notice-backend/pkg/config"
	"campus-notice-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &userdomain.Category{}, &userdomain.UserCategory{}, &postdomain.Post{}, &notifdomain.Notification{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	users := authRepo.NewUserRepository(db)
	profiles := userRepo.NewUserRepository(db)
	posts := postRepo.NewPostRepository(db)
	notifications := notifRepo.NewNotificationRepository(db)

	// Token codec and chat gateway
	codec := token.NewCodec(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	chatClient := chat.NewClient(cfg.ChatBaseURL, cfg.ChatMaxRetries, cfg.ChatTimeout)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(users, codec)
	userUc := userUsecase.NewUserUsecase(profiles)
	postUc := postUsecase.NewPostUsecase(posts, profiles)
	notifUc := notifUsecase.NewNotificationUsecase(notifications, posts)
	chatUc := chatUsecase.NewChatUsecase(chatClient)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, userUc, postUc, notifUc, chatUc)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
