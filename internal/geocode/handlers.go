package geocode

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		address := strings.TrimSpace(c.Query("address"))
		if address == "" {
			return fiber.NewError(fiber.StatusBadRequest, "address required")
		}
		lat, lng, err := svc.Geocode(c.Context(), address)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "geocoding service error")
		}
		return c.JSON(fiber.Map{"lat": lat, "lng": lng})
	})

	r.Get("/suggest", func(c *fiber.Ctx) error {
		query := strings.TrimSpace(c.Query("q"))
		if len(query) < 3 {
			return fiber.NewError(fiber.StatusBadRequest, "query must be at least 3 characters")
		}
		suggestions, err := svc.Suggest(c.Context(), query)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "suggestion service error")
		}
		if suggestions == nil {
			suggestions = []Place{}
		}
		return c.JSON(fiber.Map{"suggestions": suggestions})
	})

	r.Get("/reverse", func(c *fiber.Ctx) error {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
		if latErr != nil || lngErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lat/lng required")
		}
		place, err := svc.Reverse(c.Context(), lat, lng)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "geocoding service error")
		}
		return c.JSON(place)
	})
}
