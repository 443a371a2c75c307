package config

import (
	"os"

	"share-a-bite-backend/internal/api/handlers"
	"share-a-bite-backend/internal/api/routes"
	"share-a-bite-backend/internal/middleware"
	"share-a-bite-backend/internal/utils"
	"share-a-bite-backend/internal/utils/mailing"
	"share-a-bite-backend/internal/utils/storage"
	"share-a-bite-backend/pkg/food"
	"share-a-bite-backend/pkg/identity"
	"share-a-bite-backend/pkg/request"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// access log
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
		Output:     file,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()
	resolver := identity.NewResolver(utils.GetConfig("JWT_SECRET"))

	// Repository
	foodRepository := food.NewFoodRepository(db)
	requestRepository := request.NewRequestRepository(db)

	// Service
	foodService := food.NewFoodService(foodRepository, requestRepository, s3)
	requestService := request.NewRequestService(requestRepository, foodRepository, mailer)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator, resolver)
	requestHandler := handlers.NewRequestHandler(requestService, validator, resolver)

	// routes
	routesConfig := routes.Config{
		App:            app,
		FoodHandler:    foodHandler,
		RequestHandler: requestHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
