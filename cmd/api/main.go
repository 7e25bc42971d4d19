package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"openland/internal/config"
	"openland/internal/database"
	"openland/internal/middleware"
	"openland/internal/modules/admin"
	"openland/internal/modules/auth"
	"openland/internal/modules/consultation"
	"openland/internal/modules/favorite"
	"openland/internal/modules/land"
	"openland/internal/modules/message"
	"openland/internal/modules/notification"
	"openland/internal/modules/settings"
	jwtsvc "openland/internal/pkg/jwt"
	"openland/internal/repository"
	"openland/internal/upload"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	storage := upload.NewStorage(cfg.UploadDir, cfg.StaticBase)
	if err := storage.EnsureDirs(); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	landRepo := repository.NewLandRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	landService := land.NewService(landRepo, userRepo, mediaRepo, documentRepo)
	landHandler := land.NewHandler(landService, storage)

	adminService := admin.NewService(landRepo, userRepo, documentRepo, notificationService)
	adminHandler := admin.NewHandler(adminService)

	messageService := message.NewService(messageRepo, userRepo, notificationService)
	messageHandler := message.NewHandler(messageService)

	favoriteService := favorite.NewService(favoriteRepo, landRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	consultationService := consultation.NewService(consultationRepo, notificationService)
	consultationHandler := consultation.NewHandler(consultationService)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(cfg.StaticBase, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.Auth(j), middleware.AdminOnly())

		// public
		landHandler.RegisterPublicRoutes(v1)

		// authenticated
		authHandler.RegisterRoutes(v1, protected)
		landHandler.RegisterProtectedRoutes(protected)
		notificationHandler.RegisterRoutes(protected)
		messageHandler.RegisterRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)

		// admin
		adminHandler.RegisterRoutes(adminGroup)
		consultationHandler.RegisterRoutes(protected, adminGroup)
		settingsHandler.RegisterRoutes(v1, adminGroup)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
