package friend

import (
	"errors"

	"backend-citybeat/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req AddRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		added, err := svc.Add(c.Context(), auth.ViewerID(c), req.Identifier)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrSelfFriend), errors.Is(err, ErrIdentifier):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}
		return c.JSON(fiber.Map{"ok": true, "friend": added})
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		friends, err := svc.List(c.Context(), auth.ViewerID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if friends == nil {
			friends = []Friend{}
		}
		return c.JSON(fiber.Map{"friends": friends})
	})
}
