package model

import "time"

// Flag identifies a specific data-quality or consistency problem
type Flag string

const (
	FlagMissingPolicyNumber     Flag = "missing_policy_number"
	FlagMissingPolicyholderName Flag = "missing_policyholder_name"
	FlagMissingIncidentDate     Flag = "missing_incident_date"
	FlagIncidentAfterSubmission Flag = "incident_after_submission"
	FlagUnparseableClaimAmount  Flag = "unparseable_claim_amount"
	FlagVeryHighClaimAmount     Flag = "very_high_claim_amount"
)

// Workflow is a terminal routing outcome
type Workflow string

const (
	WorkflowFastTrack    Workflow = "fast_track"    // Low risk, complete fields, no manual review
	WorkflowManualReview Workflow = "manual_review" // Missing/inconsistent data or elevated risk
)

// ValidationResult pairs each fired flag with a human-readable reason.
// Flags and Reasons always have equal length and matching order.
type ValidationResult struct {
	Flags   []Flag   `json:"flags"`
	Reasons []string `json:"reasons"`
}

// Add appends a flag with its reason, keeping the pairing invariant.
func (v *ValidationResult) Add(flag Flag, reason string) {
	v.Flags = append(v.Flags, flag)
	v.Reasons = append(v.Reasons, reason)
}

// Decision is the terminal output record for one processed narrative.
// It is created once per pipeline call and never mutated afterward.
type Decision struct {
	Fields         ExtractedFields `json:"extracted_fields"`
	Flags          []Flag          `json:"validation_flags"`
	Reasons        []string        `json:"validation_reasons"`
	Severity       float64         `json:"severity_score"`
	Workflow       Workflow        `json:"workflow"`
	WorkflowReason string          `json:"workflow_reason"`
	Explanation    []string        `json:"explanation"`
}

// Record is a persisted decision. IDs and timestamps are assigned by the
// store, never by the pipeline, so pipeline output stays deterministic.
type Record struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	Decision  Decision  `json:"decision"`
}
