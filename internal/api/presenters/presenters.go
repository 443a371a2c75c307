package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorResponse writes the {error: message} envelope. The underlying cause
// is logged server-side for unexpected failures and never echoed to the
// caller.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	if err != nil && code == fiber.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(message)
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// SuccessResponse writes the {success: true, <key>: <record>} envelope used
// by mutating operations. Pass an empty key for a bare {success: true}.
func SuccessResponse(c *fiber.Ctx, code int, key string, record interface{}) error {
	resp := fiber.Map{"success": true}
	if key != "" {
		resp[key] = record
	}
	return c.Status(code).JSON(resp)
}
