package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/trentd187/kyp-backend/internal/middleware"
	"github.com/trentd187/kyp-backend/internal/models"
	"github.com/trentd187/kyp-backend/internal/store"
)

// Error messages returned to clients. The backend error itself only goes to the server log.
const (
	ErrMsgInvalidGenderTarget = "Invalid or missing 'gender_target' query parameter. Must be 'wife' or 'husband'."
	ErrMsgFetchProducts       = "An error occurred while fetching products."
)

// GetProducts returns a handler for GET /api/products?gender_target=<wife|husband>.
//
// It follows the "handler factory" pattern: the store is injected once and captured
// by the returned closure, so there are no package-level globals.
//
//   - missing or unknown gender_target → 400, the store is not called
//   - store error                      → 500 with a generic message, detail logged
//   - otherwise                        → 200 with the records as a JSON array
func GetProducts(products store.ProductStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		target, ok := models.ParseGenderTarget(c.Query(models.GenderTargetColumn))
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": ErrMsgInvalidGenderTarget,
			})
		}

		// One outbound read per request; nothing is cached between calls.
		result, err := products.ListByGenderTarget(c.UserContext(), target)
		if err != nil {
			log.Error().
				Err(err).
				Str("request_id", middleware.GetRequestID(c)).
				Str("gender_target", string(target)).
				Msg("Error fetching products")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": ErrMsgFetchProducts,
			})
		}

		if result == nil {
			result = []models.Product{}
		}
		return c.JSON(result)
	}
}
