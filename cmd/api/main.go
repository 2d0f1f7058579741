package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vidtube/internal/config"
	"vidtube/internal/database"
	"vidtube/internal/middleware"
	"vidtube/internal/modules/user"
	jwtsvc "vidtube/internal/pkg/jwt"
	"vidtube/internal/pkg/mediastore"
	"vidtube/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

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

	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		log.Fatal(err)
	}

	store, err := mediastore.New(context.Background(), mediastore.Options{
		Endpoint:  cfg.ObjectStoreEndpoint,
		AccessKey: cfg.ObjectStoreAccessKey,
		SecretKey: cfg.ObjectStoreSecretKey,
		Bucket:    cfg.ObjectStoreBucket,
		UseSSL:    cfg.ObjectStoreUseSSL,
		BaseURL:   cfg.MediaBaseURL,
	})
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	pipeline := mediastore.NewPipeline(store)
	signer := jwtsvc.New(cfg.AccessTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenSecret, cfg.RefreshTokenTTL)

	userService := user.NewService(userRepo, pipeline, signer)
	cookies := user.NewCookieManager(cfg.CookieSecure, cfg.CookieSameSite, cfg.CookiePath, cfg.RefreshTokenTTL)
	userHandler := user.NewHandler(userService, cookies, cfg.TempDir)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		userHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(signer))
		{
			userHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
