package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		HelmetMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New()
}

func (m *middleware) HelmetMiddleware() fiber.Handler {
	return helmet.New()
}

// RecoverMiddleware converts panics into 500 responses so a single request
// can never take the process down.
func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New()
}
