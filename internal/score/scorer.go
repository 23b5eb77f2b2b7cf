package score

import (
	"github.com/clearclaim/fnoltriage/internal/model"
)

// Additive severity weights. The two amount thresholds stack: a claim over
// 500,000 collects both adjustments.
const (
	weightFire      = 0.5
	weightTheft     = 0.3
	weightCollision = 0.2

	policeReportCredit = 0.15

	highAmountThreshold     = 200_000
	highAmountWeight        = 0.35
	veryHighAmountThreshold = 500_000
	veryHighAmountWeight    = 0.20
)

// Scorer computes a bounded severity score from extracted fields
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score accumulates the rule adjustments and clamps the result to [0, 1].
// A missing claimed amount contributes zero. Deterministic, never fails.
func (s *Scorer) Score(fields model.ExtractedFields) float64 {
	score := 0.0

	switch fields.IncidentType {
	case model.IncidentFire:
		score += weightFire
	case model.IncidentTheft:
		score += weightTheft
	case model.IncidentCollision:
		score += weightCollision
	}

	if fields.HasPoliceReport {
		score -= policeReportCredit
	}

	amount := fields.AmountOrZero()
	if amount > highAmountThreshold {
		score += highAmountWeight
	}
	if amount > veryHighAmountThreshold {
		score += veryHighAmountWeight
	}

	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
