package routes

import (
	"share-a-bite-backend/domain"
	"share-a-bite-backend/internal/api/handlers"
	"share-a-bite-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	FoodHandler    handlers.FoodHandler
	RequestHandler handlers.RequestHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.HelmetMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())

	c.ServiceMarker()
	c.Foods()
	c.Requests()
	c.Fallback()
}

func (c *Config) ServiceMarker() {
	c.App.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ok": true, "service": "Share A Bite API"})
	})
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/foods")
	{
		foods.Get("", c.FoodHandler.GetFoods)
		foods.Post("", c.FoodHandler.CreateFood)
		// Registered before /:id so the literal path wins.
		foods.Get("/my/list/me", c.FoodHandler.GetMyFoods)
		foods.Get("/:id", c.FoodHandler.GetFoodDetails)
		foods.Patch("/:id", c.FoodHandler.UpdateFood)
		foods.Delete("/:id", c.FoodHandler.DeleteFood)
		foods.Post("/:id/image", c.FoodHandler.UploadFoodImage)

		foods.Post("/:foodId/requests", c.RequestHandler.CreateRequest)
		foods.Get("/:foodId/requests", c.RequestHandler.GetRequestsForFood)
	}
}

func (c *Config) Requests() {
	c.App.Patch("/api/requests/:requestId", c.RequestHandler.DecideRequest)
	c.App.Get("/api/my/requests", c.RequestHandler.GetMyRequests)
}

// Fallback answers every unmatched route with the API's 404 envelope.
func (c *Config) Fallback() {
	c.App.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": domain.MessageRouteNotFound})
	})
}
