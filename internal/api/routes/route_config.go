package routes

import (
	"RecipeSite/internal/api/handlers"
	"RecipeSite/internal/middleware"
	"RecipeSite/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	LookupHandler handlers.LookupHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
	DataSource    string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Lookups()
	c.Recipes()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":      "OK",
			"data_source": c.DataSource,
		})
	})
}

func (c *Config) User() {
	api := c.App.Group("/api")
	{
		api.Post("/register", c.UserHandler.Register)
		api.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Lookups() {
	api := c.App.Group("/api")
	{
		api.Get("/categories", c.LookupHandler.GetCategories)
		api.Get("/regions", c.LookupHandler.GetRegions)
	}
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/api/saved-recipes", auth, c.RecipeHandler.GetSavedRecipes)

	recipes := c.App.Group("/api/recipes")
	// static segments before /:id
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Post("/image", auth, c.RecipeHandler.UploadRecipeImage)
	recipes.Get("/user/:userId", c.RecipeHandler.GetRecipesByUser)

	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Get("/:id/similar", c.RecipeHandler.GetSimilarRecipes)
	recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/save", auth, c.RecipeHandler.SaveRecipe)
	recipes.Delete("/:id/save", auth, c.RecipeHandler.UnsaveRecipe)
	recipes.Post("/:id/rate", auth, c.RecipeHandler.RateRecipe)
}
