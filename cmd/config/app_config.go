package config

import (
	"RecipeSite/domain"
	"RecipeSite/internal/api/handlers"
	"RecipeSite/internal/api/routes"
	"RecipeSite/internal/middleware"
	"RecipeSite/internal/utils"
	"RecipeSite/internal/utils/mailing"
	"RecipeSite/internal/utils/storage"
	"RecipeSite/pkg/cache"
	"RecipeSite/pkg/jwt"
	"RecipeSite/pkg/lookup"
	"RecipeSite/pkg/recipe"
	"RecipeSite/pkg/user"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewApp(ctx context.Context, repos Repositories) (*fiber.App, error) {
	secret := utils.GetConfig("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("CORS_ORIGINS"))
	validator := utils.Validate

	// setting up logging and limiter
	logPath := utils.GetConfig("LOG_PATH")
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		logPath,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("DB_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_PER_SECOND", 10),
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3(ctx, storage.S3Config{
		Bucket:    utils.GetConfig("AWS_S3_BUCKET"),
		Region:    utils.GetConfig("AWS_S3_REGION"),
		AccessKey: utils.GetConfig("AWS_ACCESS_KEY"),
		SecretKey: utils.GetConfig("AWS_SECRET_KEY"),
	})
	if errors.Is(err, domain.ErrStorageDisabled) {
		log.Warn("S3 is not configured, image uploads are disabled")
		s3 = nil
	} else if err != nil {
		return nil, err
	}

	mailer := mailing.NewMailer(mailing.LoadMailConfig())
	if !mailer.Enabled() {
		log.Warn("SMTP is not configured, welcome mails are disabled")
	}

	lookupCache := cache.NewNoopCache()
	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		client := cache.NewRedisClient(addr, utils.GetConfig("REDIS_PASSWORD"), utils.GetConfigInt("REDIS_DB", 0))
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warnf("redis at %s unreachable, caching disabled: %v", addr, err)
		} else {
			lookupCache = cache.NewRedisCache(client, "recipesite:")
		}
	}

	// Service
	jwtService := jwt.NewJWTService(
		secret,
		time.Duration(utils.GetConfigInt("JWT_TTL_MINUTES", 120))*time.Minute,
	)
	userService := user.NewUserService(repos.User, jwtService, mailer, utils.GetConfig("APP_URL"))
	recipeService := recipe.NewRecipeService(repos.Recipe, s3)
	lookupService := lookup.NewLookupService(
		repos.Lookup,
		lookupCache,
		time.Duration(utils.GetConfigInt("CACHE_TTL_SECONDS", 300))*time.Second,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	lookupHandler := handlers.NewLookupHandler(lookupService)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		RecipeHandler: recipeHandler,
		LookupHandler: lookupHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
		DataSource:    repos.Source,
	}
	routesConfig.Setup()
	return app, nil
}
