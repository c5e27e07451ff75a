package account

import (
	"errors"
	"time"

	"backend-citybeat/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware, optionalAuth fiber.Handler) {
	r.Get("/me", authMiddleware, func(c *fiber.Ctx) error {
		profile, err := svc.Me(c.Context(), auth.ViewerID(c))
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(fiber.Map{"user": profile})
	})

	r.Patch("/me", authMiddleware, func(c *fiber.Ctx) error {
		var patch ProfilePatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		profile, err := svc.UpdateProfile(c.Context(), auth.ViewerID(c), patch)
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(fiber.Map{"user": profile})
	})

	r.Get("/users/:id/public", optionalAuth, func(c *fiber.Ctx) error {
		card, err := svc.HostCard(c.Context(), c.Params("id"), auth.ViewerID(c), time.Now())
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(card)
	})
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrUsernameTaken):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrEmptyPatch):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
