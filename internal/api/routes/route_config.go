package routes

import (
	"github.com/Jerry-724/fridge-and-recipe-74/internal/api/handlers"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/middleware"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	CategoryHandler     handlers.CategoryHandler
	ItemHandler         handlers.ItemHandler
	OcrHandler          handlers.OcrHandler
	RecipeHandler       handlers.RecipeHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Category()
	c.Item()
	c.Ocr()
	c.Recipe()
	c.Notification()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/user")
	{
		user.Post("/create", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/me/email", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateEmail)
		user.Patch("/me/notification", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateNotification)
		user.Patch("/:id/username", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUsername)
		user.Patch("/:id/password", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePassword)
		user.Delete("/:id/delete", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteAccount)
	}
}

func (c *Config) Category() {
	category := c.App.Group("/api/v1/category")
	category.Get("/", c.Middleware.AuthMiddleware(c.JWTService), c.CategoryHandler.GetCategories)
}

func (c *Config) Item() {
	item := c.App.Group("/api/v1/item", c.Middleware.AuthMiddleware(c.JWTService))
	item.Get("/:user_id/", c.ItemHandler.GetItems)
	item.Post("/:user_id/items", c.ItemHandler.AddItem)
	item.Patch("/:user_id/items/:item_id", c.ItemHandler.UpdateItem)
	item.Delete("/:user_id/items", c.ItemHandler.DeleteItems)
}

func (c *Config) Ocr() {
	ocr := c.App.Group("/api/v1/ocr", c.Middleware.AuthMiddleware(c.JWTService))
	ocr.Post("/extract-names", c.OcrHandler.ExtractNames)
	ocr.Post("/classify-names", c.OcrHandler.ClassifyNames)
	ocr.Post("/save-items", c.OcrHandler.SaveItems)
}

func (c *Config) Recipe() {
	qa := c.App.Group("/api/v1/qa", c.Middleware.AuthMiddleware(c.JWTService))
	qa.Get("/recommend-recipes", c.RecipeHandler.RecommendRecipes)
}

func (c *Config) Notification() {
	notification := c.App.Group("/api/v1/notification", c.Middleware.AuthMiddleware(c.JWTService))
	notification.Post("/token", c.NotificationHandler.RegisterToken)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
