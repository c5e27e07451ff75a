package promotion

import (
	"errors"

	"backend-citybeat/internal/auth"
	"backend-citybeat/internal/shared/validate"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		promo, err := svc.Create(c.Context(), auth.ViewerID(c), req)
		if err != nil {
			switch {
			case errors.Is(err, ErrBadRadius), errors.Is(err, ErrTimeOrder):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrEventNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrNotOwner):
				return fiber.NewError(fiber.StatusForbidden, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(promo)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		eventID := c.Query("eventId")
		if eventID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "eventId required")
		}
		promos, err := svc.ListForEvent(c.Context(), eventID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if promos == nil {
			promos = []Promotion{}
		}
		return c.JSON(fiber.Map{"promotions": promos})
	})
}
