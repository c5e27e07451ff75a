package discovery

// MetersPerMile converts the HTTP-boundary radius to meters for the planners.
const MetersPerMile = 1609.34

const (
	DefaultRadiusMiles = 25.0
	MinRadiusMiles     = 1.0
	FreeMaxRadiusMiles = 25.0

	// PremiumMaxRadiusMiles is roughly half Earth's circumference: premium
	// viewers are effectively unbounded, but the query never degenerates
	// into an unlimited scan radius.
	PremiumMaxRadiusMiles = 12450.0
)

// EffectiveRadiusMiles clamps a requested radius to the viewer's tier.
// Non-positive requests clamp up to one mile; non-premium viewers are capped
// at 25 miles.
func EffectiveRadiusMiles(requested float64, premium bool) float64 {
	if requested <= 0 {
		return MinRadiusMiles
	}
	max := FreeMaxRadiusMiles
	if premium {
		max = PremiumMaxRadiusMiles
	}
	if requested > max {
		return max
	}
	return requested
}
