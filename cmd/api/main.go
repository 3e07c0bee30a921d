package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trainerbook/internal/config"
	"trainerbook/internal/database"
	"trainerbook/internal/middleware"
	"trainerbook/internal/modules/auth"
	"trainerbook/internal/modules/busyslot"
	"trainerbook/internal/modules/notification"
	"trainerbook/internal/modules/session"
	"trainerbook/internal/pkg/logger"
	jwtsvc "trainerbook/internal/pkg/jwt"
	"trainerbook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	busySlotRepo := repository.NewBusySlotRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	busySlotService := busyslot.NewService(busySlotRepo, notificationService, zlog)
	busySlotHandler := busyslot.NewHandler(busySlotService)

	sessionService := session.NewService(sessionRepo, busySlotRepo, notificationService, zlog)
	sessionHandler := session.NewHandler(sessionService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(zlog), gin.Recovery(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			busySlotHandler.RegisterRoutes(protected)
			sessionHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}
	}

	zlog.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
