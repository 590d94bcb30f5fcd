// Package middleware contains HTTP middleware functions for the KYP Backend API.
// Middleware sits between the HTTP server and route handlers: it runs on every request
// that passes through it, which makes it the place for cross-cutting concerns like
// request correlation and cross-origin access.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	// uuid generates request IDs when the caller didn't send one
	"github.com/google/uuid"
)

// RequestIDHeader is the header a request ID is read from and echoed back in.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the c.Locals key holding the current request ID.
// Fiber's access logger prints it through the ${locals:requestID} tag.
const RequestIDKey = "requestID"

// maxRequestIDLen caps caller-supplied IDs so a client can't bloat our log lines.
const maxRequestIDLen = 128

// RequestID returns a middleware that tags every request with an ID.
// If the caller sent a usable X-Request-ID (for example a proxy in front of us) it is reused;
// otherwise a random UUID is generated. The ID is stored in c.Locals and set on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Locals(RequestIDKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}

// GetRequestID returns the ID stored by RequestID, or "" if that middleware didn't run.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}
