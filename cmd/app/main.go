package main

import (
	"context"
	"log"

	"FashionStoreAPI/external/fashionapi"
	"FashionStoreAPI/internal/cache"
	"FashionStoreAPI/internal/config"
	"FashionStoreAPI/internal/db"
	"FashionStoreAPI/internal/middleware"
	"FashionStoreAPI/internal/repository"
	"FashionStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// CONFIG
	// ======================
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	var pageCache cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr)
		defer redisCache.Close()
		pageCache = redisCache
	}

	// ======================
	// EXTERNALS
	// ======================
	fashionClient, err := fashionapi.NewClient(cfg.FashionAPIURL)
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	receiptRepo := repository.NewReceiptRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo)
	userSvc := services.NewUserService(userRepo)
	receiptSvc := services.NewReceiptService(receiptRepo)
	catalogSvc := services.NewCatalogService(fashionClient, pageCache, cfg.CatalogTTL)

	jwtm := middleware.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))

	// ======================
	// ROUTES
	// ======================
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"message": "welcome to the api"})
	})
	registerAuthRoutes(e, authSvc, jwtm)
	registerUserRoutes(e, userSvc)
	registerReceiptRoutes(e, receiptSvc)
	registerCatalogRoutes(e, catalogSvc)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
