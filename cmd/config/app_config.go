package config

import (
	"os"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/internal/api/handlers"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/api/routes"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/middleware"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/utils"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/utils/storage"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/category"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/item"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/jwt"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/notification"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/ocr"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/recipe"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *notification.ExpiryWorker, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	itemRepository := item.NewItemRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	categoryService := category.NewCategoryService(categoryRepository)
	itemService := item.NewItemService(itemRepository, categoryRepository)
	ocrService := ocr.NewOcrService(itemRepository, categoryService, s3)
	recipeService := recipe.NewRecipeService(itemRepository)
	notificationService := notification.NewNotificationService(notificationRepository, itemRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	ocrHandler := handlers.NewOcrHandler(ocrService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		CategoryHandler:     categoryHandler,
		ItemHandler:         itemHandler,
		OcrHandler:          ocrHandler,
		RecipeHandler:       recipeHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()

	expiryWorker := notification.NewExpiryWorker(notificationService, 24*time.Hour)
	return app, expiryWorker, nil
}
