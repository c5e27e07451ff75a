package discovery

import "math"

// Weights are the ranking constants of the composite score. They are named
// configuration so the formula can be tuned and tested independently.
type Weights struct {
	BoostScore     float64
	DistanceWeight float64
	TimeWeight     float64
}

var DefaultWeights = Weights{
	BoostScore:     5000,
	DistanceWeight: 1000,
	TimeWeight:     500,
}

// Score computes the composite relevance of a candidate, higher is better:
//
//	score = boost - DistanceWeight*ln(meters+1) - TimeWeight*|hoursToStart|
//
// The boost term dominates so promoted events surface near the top; the
// logarithm flattens the marginal cost of distance; the time penalty is
// symmetric around now. The primary planner evaluates the same expression in
// SQL with these weights as parameters.
func (w Weights) Score(meters, hoursToStart float64, boosted bool) float64 {
	score := -w.DistanceWeight*math.Log(meters+1) - w.TimeWeight*math.Abs(hoursToStart)
	if boosted {
		score += w.BoostScore
	}
	return score
}
