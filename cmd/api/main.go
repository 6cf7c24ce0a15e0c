package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"modelo/internal/config"
	"modelo/internal/database"
	"modelo/internal/domain/application"
	"modelo/internal/domain/auth"
	"modelo/internal/domain/chat"
	"modelo/internal/domain/listing"
	"modelo/internal/domain/notification"
	"modelo/internal/domain/profile"
	"modelo/internal/domain/upload"
	"modelo/internal/middleware"
	jwtsvc "modelo/internal/pkg/jwt"
	"modelo/internal/worker"
)

const userCacheSize = 1024

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	// Repositories
	userRepo := auth.NewRepository(db)
	profileRepo := profile.NewRepository(db)
	listingRepo := listing.NewRepository(db)
	applicationRepo := application.NewRepository(db)
	chatRepo := chat.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	uploadRepo := upload.NewRepository(db)

	// Services
	notificationService := notification.NewService(notificationRepo)
	authService := auth.NewService(userRepo, j)
	profileService := profile.NewService(profileRepo, userRepo, userCacheSize, cfg.UserCacheTTL)
	listingService := listing.NewService(listingRepo)
	applicationService := application.NewService(applicationRepo, listingService, notificationService)
	chatService := chat.NewService(chatRepo, userRepo, applicationRepo, listingService, notificationService)
	uploadService := upload.NewService(uploadRepo, cfg.UploadsDir, cfg.StaticBase)

	// Handlers
	hub := chat.NewHub()
	authHandler := auth.NewHandler(authService)
	profileHandler := profile.NewHandler(profileService)
	listingHandler := listing.NewHandler(listingService)
	applicationHandler := application.NewHandler(applicationService)
	chatHandler := chat.NewHandler(chatService, hub)
	notificationHandler := notification.NewHandler(notificationService)
	uploadHandler := upload.NewHandler(uploadService)

	// Background jobs
	w := worker.New(listingService, notificationService)
	if err := w.Start(); err != nil {
		log.Fatal(err)
	}
	defer w.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.Static(cfg.StaticBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(middleware.RequireAuth(j))
	{
		auth.RegisterRoutes(v1, protected, authHandler)
		listing.RegisterRoutes(v1, protected, listingHandler)
		profile.RegisterRoutes(protected, profileHandler)
		application.RegisterRoutes(protected, applicationHandler)
		chat.RegisterRoutes(protected, chatHandler)
		notification.RegisterRoutes(protected, notificationHandler)
		upload.RegisterRoutes(protected, uploadHandler)
	}

	log.Printf("listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
