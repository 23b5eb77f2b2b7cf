package validate

import (
	"github.com/clearclaim/fnoltriage/internal/model"
)

// Amount above which a claim is flagged regardless of anything else.
const veryHighAmountThreshold = 1_000_000

// Validator checks extracted fields for presence and cross-field consistency
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs every check in fixed order and returns the fired flags
// paired with human-readable reasons. Each check fires at most once, so
// duplicates are impossible. Validate always terminates and never fails;
// absent fields are a normal input, not an error.
func (v *Validator) Validate(fields model.ExtractedFields) model.ValidationResult {
	var result model.ValidationResult

	if fields.PolicyNumber == nil {
		result.Add(model.FlagMissingPolicyNumber, "Policy number not found.")
	}
	if fields.PolicyholderName == nil {
		result.Add(model.FlagMissingPolicyholderName, "Policyholder name not found.")
	}
	if fields.IncidentDate == nil {
		result.Add(model.FlagMissingIncidentDate, "Incident date not found.")
	}

	if fields.IncidentDate != nil && fields.SubmissionDate != nil {
		if fields.IncidentDate.After(*fields.SubmissionDate) {
			result.Add(model.FlagIncidentAfterSubmission, "Incident date is after submission date.")
		}
	}

	if fields.ClaimedAmountValue == nil && fields.ClaimedAmountText != nil {
		result.Add(model.FlagUnparseableClaimAmount, "Claimed amount could not be parsed to a number.")
	}
	if fields.ClaimedAmountValue != nil && *fields.ClaimedAmountValue > veryHighAmountThreshold {
		result.Add(model.FlagVeryHighClaimAmount, "Very high claimed amount (> 1,000,000).")
	}

	return result
}
