// Package server assembles the Fiber application: global middleware and the route table.
// Keeping this out of main lets tests drive the exact app that production serves.
package server

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	// logger prints request details (method, path, status, duration) for every request
	"github.com/gofiber/fiber/v2/middleware/logger"
	// recover turns a panicking handler into a 500 instead of crashing the process
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/trentd187/kyp-backend/internal/handlers"
	"github.com/trentd187/kyp-backend/internal/middleware"
	"github.com/trentd187/kyp-backend/internal/store"
)

// AppName is reported by Fiber in its startup banner.
const AppName = "KYP Backend API"

// accessLogFormat is the Fiber logger template. ${locals:requestID} pulls the ID
// that middleware.RequestID stored for this request.
const accessLogFormat = "${time} ${locals:requestID} ${status} - ${latency} ${method} ${path}?${queryParams}\n"

// Options tweaks how the app is built. The zero value is what production uses.
type Options struct {
	// AccessLog receives one line per request. Defaults to os.Stdout.
	AccessLog io.Writer
}

// New builds the Fiber app around the given product store.
//
// Routes:
//
//	GET /              plain-text "running" message
//	GET /health        JSON liveness probe
//	GET /api/products  products filtered by ?gender_target=wife|husband
func New(products store.ProductStore, opts Options) *fiber.App {
	if opts.AccessLog == nil {
		opts.AccessLog = os.Stdout
	}

	app := fiber.New(fiber.Config{
		AppName: AppName,
	})

	// --- Global middleware ---
	// Order matters: recover must wrap everything, and the request ID must exist
	// before the access logger reads it.
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: accessLogFormat,
		Output: opts.AccessLog,
	}))
	app.Use(middleware.CORS())

	// --- Public routes (there is no authentication in this API) ---
	app.Get("/", handlers.Root)
	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	api.Get("/products", handlers.GetProducts(products))

	return app
}
