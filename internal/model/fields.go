package model

// IncidentType categorizes the reported loss
type IncidentType string

const (
	IncidentTheft     IncidentType = "theft"     // Stolen vehicle or property
	IncidentCollision IncidentType = "collision" // Vehicle collision or crash
	IncidentFire      IncidentType = "fire"      // Fire or burn damage
	IncidentWater     IncidentType = "water"     // Flood or water damage
	IncidentOther     IncidentType = "other"     // Anything the lexicon does not recognize
)

// ExtractedFields holds every field the extractor recovers from a narrative.
// Optional fields are pointers: nil means "not found", never an error. The
// two booleans and the incident type are always set.
type ExtractedFields struct {
	PolicyNumber       *string      `json:"policy_number"`
	PolicyholderName   *string      `json:"policyholder_name"`
	IncidentDate       *Date        `json:"incident_date"`
	SubmissionDate     *Date        `json:"submission_date"`
	ContactPhone       *string      `json:"contact_phone"`
	ClaimedAmountText  *string      `json:"claimed_amount_text"`
	ClaimedAmountValue *float64     `json:"claimed_amount_value"`
	IncidentType       IncidentType `json:"incident_type"`
	HasPoliceReport    bool         `json:"has_police_report"`
	HasPhotos          bool         `json:"has_photos"`
}

// AmountOrZero returns the claimed amount, treating absence as zero.
// Scoring and routing thresholds compare against this value.
func (f ExtractedFields) AmountOrZero() float64 {
	if f.ClaimedAmountValue == nil {
		return 0
	}
	return *f.ClaimedAmountValue
}
