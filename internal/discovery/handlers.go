package discovery

import (
	"context"
	"strconv"
	"time"

	"backend-citybeat/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// PremiumChecker resolves the viewer's subscription tier for the radius
// clamp. The account service satisfies this.
type PremiumChecker interface {
	IsPremium(ctx context.Context, userID string) (bool, error)
}

func RegisterRoutes(r fiber.Router, svc *Service, premium PremiumChecker, optionalAuth fiber.Handler) {
	r.Get("/nearby", optionalAuth, func(c *fiber.Ctx) error {
		latStr, lngStr := c.Query("lat"), c.Query("lng")
		if latStr == "" || lngStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "lat/lng required")
		}
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil || lat < -90 || lat > 90 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid field: lat")
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil || lng < -180 || lng > 180 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid field: lng")
		}

		radiusMi := DefaultRadiusMiles
		if s := c.Query("radiusMi"); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				radiusMi = v
			}
		}

		viewerID := auth.ViewerID(c)
		isPremium, err := premium.IsPremium(c.Context(), viewerID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		q := Query{
			ViewerID:     viewerID,
			Lat:          lat,
			Lng:          lng,
			RadiusMeters: EffectiveRadiusMiles(radiusMi, isPremium) * MetersPerMile,
			Now:          time.Now(),
		}
		events, err := svc.Nearby(c.Context(), q)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if events == nil {
			events = []RankedEvent{}
		}
		return c.JSON(fiber.Map{"events": events})
	})
}
