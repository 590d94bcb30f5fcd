// Package handlers contains the HTTP route handler functions for the KYP Backend API.
// Each handler corresponds to one API endpoint and is responsible for reading the
// request, calling into the store if needed, and writing a response.
package handlers

import "github.com/gofiber/fiber/v2"

// RootMessage is the fixed body served on GET /.
const RootMessage = "KYP Backend API is running!"

// Root handles GET /.
// It confirms the process is up with a plain-text message. It never touches the
// backend, so it answers 200 even when Supabase is unreachable.
func Root(c *fiber.Ctx) error {
	// SendString writes a text/plain body with status 200
	return c.SendString(RootMessage)
}

// HealthCheck handles GET /health.
// Same liveness guarantee as Root, but in JSON for load balancers and container probes.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
