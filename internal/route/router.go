package route

import (
	"strings"

	"github.com/clearclaim/fnoltriage/internal/model"
)

// Fast-track gate: both conditions must hold, and only when no flags fired.
const (
	fastTrackMaxSeverity = 0.25
	fastTrackMaxAmount   = 150_000
)

// Router assigns a claim to a terminal workflow
type Router struct{}

// NewRouter creates a new router
func NewRouter() *Router {
	return &Router{}
}

// Route picks one of the two terminal workflows. Any validation flag forces
// manual review regardless of severity; otherwise low severity plus a low
// amount (zero when absent) fast-tracks the claim. Pure function of its
// arguments, no retries, no intermediate states.
func (r *Router) Route(flags []model.Flag, severity float64, amount float64) (model.Workflow, string) {
	if len(flags) > 0 {
		names := make([]string, len(flags))
		for i, f := range flags {
			names[i] = string(f)
		}
		return model.WorkflowManualReview, "Missing or inconsistent information: " + strings.Join(names, "; ")
	}

	if severity < fastTrackMaxSeverity && amount < fastTrackMaxAmount {
		return model.WorkflowFastTrack, "Low severity and complete fields"
	}

	return model.WorkflowManualReview, "Severity or amount requires review"
}
