package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"simplecrm/internal/ai"
	"simplecrm/internal/config"
	"simplecrm/internal/middleware"
	"simplecrm/internal/modules/activity"
	"simplecrm/internal/modules/assist"
	"simplecrm/internal/modules/auth"
	"simplecrm/internal/modules/calendarmod"
	"simplecrm/internal/modules/customer"
	"simplecrm/internal/modules/dataiomod"
	"simplecrm/internal/modules/deal"
	"simplecrm/internal/modules/lead"
	"simplecrm/internal/modules/messagingmod"
	"simplecrm/internal/modules/notification"
	"simplecrm/internal/modules/reportmod"
	"simplecrm/internal/modules/searchmod"
	"simplecrm/internal/modules/settings"
	"simplecrm/internal/modules/task"
	jwtsvc "simplecrm/internal/pkg/jwt"
	"simplecrm/internal/storage"
	"simplecrm/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer backend.Close()

	hub := notification.NewHub()
	defer hub.Close()

	st := store.New(backend, store.WithNotificationObserver(hub.Broadcast))

	assistant, err := ai.New(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal(err)
	}
	if !assistant.Enabled() {
		log.Println("GEMINI_API_KEY not set, assistant endpoints serve fallbacks")
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(st, j)
	authHandler := auth.NewHandler(authService)
	wsHandler := notification.NewWSHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		v1.GET("/ws/notifications", wsHandler.HandleWebSocket)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			lead.NewHandler(st).RegisterRoutes(protected)
			customer.NewHandler(st).RegisterRoutes(protected)
			deal.NewHandler(st).RegisterRoutes(protected)
			activity.NewHandler(st).RegisterRoutes(protected)
			notification.NewHandler(st).RegisterRoutes(protected)
			task.NewHandler(st).RegisterRoutes(protected)
			calendarmod.NewHandler(st).RegisterRoutes(protected)
			searchmod.NewHandler(st).RegisterRoutes(protected)
			reportmod.NewHandler(st, assistant).RegisterRoutes(protected)
			assist.NewHandler(st, assistant).RegisterRoutes(protected)
			messagingmod.NewHandler(st).RegisterRoutes(protected)
			dataiomod.NewHandler(st).RegisterRoutes(protected)
			settings.NewHandler(st).RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func openBackend(cfg *config.Config) (storage.Backend, error) {
	if cfg.StorageDriver == "badger" {
		return storage.OpenBadger(cfg.BadgerPath)
	}
	return storage.OpenGormKV(cfg.DatabaseURL)
}
