package middleware

import (
	"github.com/gofiber/fiber/v2"
	// cors handles Cross-Origin Resource Sharing so the frontend, served from another
	// origin, is allowed to call the API from the browser
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows every origin on every route.
// The request ID header is exposed so the frontend can read it.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,HEAD,OPTIONS",
		ExposeHeaders: RequestIDHeader,
	})
}
