package extract

import (
	"regexp"
	"time"

	"github.com/clearclaim/fnoltriage/internal/model"
)

// Numeric date tokens, day/month-first then year-first. Each pattern's first
// match is tried against every layout; the first layout that consumes the
// whole token wins. Day-first layouts deliberately outrank month-first ones
// for ambiguous tokens like 09/12/2025; do not reorder.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	regexp.MustCompile(`\d{4}[/-]\d{1,2}[/-]\d{1,2}`),
}

var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2/1/06",
	"2006-1-2",
	"1/2/2006",
	"1-2-2006",
}

// Fallback: "9 December 2025". Full month names only; abbreviated names fail
// the layout and the candidate is skipped.
var monthNameDate = regexp.MustCompile(`\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}`)

const monthNameLayout = "2 January 2006"

// ParseDate finds the first date-looking token in fragment and interprets it
// against the fixed layout battery. The second return is false when no token
// parses; malformed candidates are silently skipped, never an error.
func ParseDate(fragment string) (model.Date, bool) {
	if fragment == "" {
		return model.Date{}, false
	}

	for _, pat := range datePatterns {
		tok := pat.FindString(fragment)
		if tok == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, tok); err == nil {
				return model.DateOf(t), true
			}
		}
	}

	if tok := monthNameDate.FindString(fragment); tok != "" {
		if t, err := time.Parse(monthNameLayout, tok); err == nil {
			return model.DateOf(t), true
		}
	}

	return model.Date{}, false
}
