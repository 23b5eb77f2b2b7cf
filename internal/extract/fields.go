package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/clearclaim/fnoltriage/internal/model"
)

// Fixed field rules. These mirror the wire format of real FNOL narratives
// and are not configurable; only the keyword lexicon is.
var (
	// "policy", optionally "no"/"number"/"#", then an alphanumeric run.
	// The run may legitimately be empty, which counts as not found.
	policyPattern = regexp.MustCompile(`(?i)policy(?:\s*(?:no|number|#)[:\s-]*)?([A-Z0-9\-/]*)`)

	// Label match is case-sensitive, unlike the other labels.
	namePattern = regexp.MustCompile(`(?:name|policyholder|insured)[:\s-]{1,30}([A-Z][a-zA-Z .,-]{2,60})`)

	submissionPattern = regexp.MustCompile(`(?i)(?:submission|reported|received)[:\s-]*([\d/\-]{6,12})`)

	phonePattern = regexp.MustCompile(`\+?\d{10,13}`)

	amountPattern = regexp.MustCompile(`(?i)(?:claimed amount|amount|total loss)[:\s-]*([₹$EUR£]?\s?[\d,.]+)`)

	amountDigits = regexp.MustCompile(`[^\d.]`)
)

type incidentMatcher struct {
	typ     model.IncidentType
	pattern *regexp.Regexp
}

// FieldExtractor recovers typed fields from a normalized narrative
type FieldExtractor struct {
	lexicon   *Lexicon
	incidents []incidentMatcher
}

// NewFieldExtractor creates an extractor with the given lexicon,
// or the default lexicon when lex is nil.
func NewFieldExtractor(lex *Lexicon) *FieldExtractor {
	if lex == nil {
		lex = DefaultLexicon()
	}

	incidents := make([]incidentMatcher, 0, len(lex.Incidents))
	for _, cat := range lex.Incidents {
		if len(cat.Keywords) == 0 {
			continue
		}
		quoted := make([]string, len(cat.Keywords))
		for i, kw := range cat.Keywords {
			quoted[i] = regexp.QuoteMeta(strings.ToLower(kw))
		}
		incidents = append(incidents, incidentMatcher{
			typ:     cat.Type,
			pattern: regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`),
		})
	}

	return &FieldExtractor{lexicon: lex, incidents: incidents}
}

// Extract applies the full pattern battery to a normalized narrative.
// Every field is extracted independently; a field that cannot be recovered
// is left absent. Extract never fails.
func (e *FieldExtractor) Extract(text string) model.ExtractedFields {
	fields := model.ExtractedFields{
		PolicyNumber:     e.policyNumber(text),
		PolicyholderName: e.policyholderName(text),
		ContactPhone:     e.contactPhone(text),
	}

	if d, ok := ParseDate(text); ok {
		fields.IncidentDate = &d
	}
	fields.SubmissionDate = e.submissionDate(text)

	fields.ClaimedAmountText, fields.ClaimedAmountValue = e.claimedAmount(text)

	lower := strings.ToLower(text)
	fields.IncidentType = e.incidentType(lower)
	fields.HasPoliceReport = containsAny(lower, e.lexicon.Police)
	fields.HasPhotos = containsAny(lower, e.lexicon.Photos)

	return fields
}

func (e *FieldExtractor) policyNumber(text string) *string {
	m := policyPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	num := strings.TrimSpace(m[1])
	if num == "" {
		return nil
	}
	return &num
}

func (e *FieldExtractor) policyholderName(text string) *string {
	m := namePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	name := strings.TrimSpace(m[1])
	return &name
}

// submissionDate looks for an explicit submission/reported/received label and
// parses only the captured token. A date anywhere else in the narrative is
// never treated as the submission date.
func (e *FieldExtractor) submissionDate(text string) *model.Date {
	m := submissionPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	d, ok := ParseDate(m[1])
	if !ok {
		return nil
	}
	return &d
}

func (e *FieldExtractor) contactPhone(text string) *string {
	m := phonePattern.FindString(text)
	if m == "" {
		return nil
	}
	return &m
}

// claimedAmount returns the raw matched amount text and, when it can be
// coerced, its numeric value. A populated text with an absent value is a
// deliberate divergence the validator flags.
func (e *FieldExtractor) claimedAmount(text string) (*string, *float64) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(m[1])

	digits := amountDigits.ReplaceAllString(raw, "")
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return &raw, nil
	}
	return &raw, &value
}

// incidentType assigns the first matching category in lexicon order.
// Later categories are never considered once one matches.
func (e *FieldExtractor) incidentType(lower string) model.IncidentType {
	for _, m := range e.incidents {
		if m.pattern.MatchString(lower) {
			return m.typ
		}
	}
	return model.IncidentOther
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
