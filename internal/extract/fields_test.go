package extract

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/clearclaim/fnoltriage/internal/model"
)

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "already clean", "already clean"},
		{"newlines collapse", "Policy Number: ABC-12345\nName: John Carter\n", "Policy Number: ABC-12345 Name: John Carter"},
		{"carriage returns", "line one\r\nline two\rline three", "line one line two line three"},
		{"tabs and runs", "a \t  b\n\n\nc", "a b c"},
		{"only whitespace", " \n\t\r ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFieldExtractor_PolicyNumber(t *testing.T) {
	e := NewFieldExtractor(nil)

	tests := []struct {
		name string
		text string
		want string // empty means absent
	}{
		{"labeled number", "Policy Number: ABC-12345 filed today", "ABC-12345"},
		{"hash label", "policy # XY-99/2025", "XY-99/2025"},
		{"bare policy token captures following run", "policyholder: S. Roy", "holder"},
		{"label without value", "Policy Number: ", ""},
		{"no label", "nothing relevant here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			if tt.want == "" {
				if fields.PolicyNumber != nil {
					t.Errorf("expected absent policy number, got %q", *fields.PolicyNumber)
				}
				return
			}
			if fields.PolicyNumber == nil {
				t.Fatal("expected policy number, got absent")
			}
			if *fields.PolicyNumber != tt.want {
				t.Errorf("got %q, want %q", *fields.PolicyNumber, tt.want)
			}
		})
	}
}

func TestFieldExtractor_PolicyholderName(t *testing.T) {
	e := NewFieldExtractor(nil)

	fields := e.Extract("name: John Carter reported a loss")
	if fields.PolicyholderName == nil {
		t.Fatal("expected a name")
	}
	if got := *fields.PolicyholderName; got != "John Carter reported a loss" && !strings.HasPrefix(got, "John Carter") {
		t.Errorf("unexpected name capture %q", got)
	}

	// Label matching is case-sensitive; a capitalized label does not match.
	fields = e.Extract("Full-Name: John Carter")
	if fields.PolicyholderName != nil {
		t.Errorf("expected absent name for capitalized label, got %q", *fields.PolicyholderName)
	}

	// Captured value must start with an uppercase letter.
	fields = e.Extract("insured: lowercase person")
	if fields.PolicyholderName != nil {
		t.Errorf("expected absent name for lowercase value, got %q", *fields.PolicyholderName)
	}
}

func TestFieldExtractor_Dates(t *testing.T) {
	e := NewFieldExtractor(nil)

	text := "Reported: 05/12/2025 incident happened 10/12/2025 at home"
	fields := e.Extract(text)

	// First date-looking token anywhere becomes the incident date, even when
	// it sits next to a submission label.
	if fields.IncidentDate == nil {
		t.Fatal("expected incident date")
	}
	if want := model.NewDate(2025, time.December, 5); *fields.IncidentDate != want {
		t.Errorf("incident date = %v, want %v", *fields.IncidentDate, want)
	}

	if fields.SubmissionDate == nil {
		t.Fatal("expected submission date")
	}
	if want := model.NewDate(2025, time.December, 5); *fields.SubmissionDate != want {
		t.Errorf("submission date = %v, want %v", *fields.SubmissionDate, want)
	}
}

func TestFieldExtractor_ContactPhone(t *testing.T) {
	e := NewFieldExtractor(nil)

	fields := e.Extract("Contact: +919876543210 after 5pm")
	if fields.ContactPhone == nil || *fields.ContactPhone != "+919876543210" {
		t.Errorf("expected +919876543210, got %v", fields.ContactPhone)
	}

	fields = e.Extract("call 12345")
	if fields.ContactPhone != nil {
		t.Errorf("expected absent phone for short digit run, got %q", *fields.ContactPhone)
	}
}

func TestFieldExtractor_ClaimedAmount(t *testing.T) {
	e := NewFieldExtractor(nil)

	tests := []struct {
		name      string
		text      string
		wantText  string
		wantValue float64
		parseable bool
	}{
		{"rupee grouping", "Claimed Amount: ₹1,50,000", "₹1,50,000", 150000, true},
		{"dollar", "amount: $12,500.50", "$12,500.50", 12500.50, true},
		{"total loss label", "Total Loss - 500000", "500000", 500000, true},
		{"punctuation only run is unparseable", "Claimed Amount: ,,.", ",,.", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			if fields.ClaimedAmountText == nil {
				t.Fatal("expected amount text")
			}
			if *fields.ClaimedAmountText != tt.wantText {
				t.Errorf("text = %q, want %q", *fields.ClaimedAmountText, tt.wantText)
			}
			if !tt.parseable {
				if fields.ClaimedAmountValue != nil {
					t.Errorf("expected absent value, got %v", *fields.ClaimedAmountValue)
				}
				return
			}
			if fields.ClaimedAmountValue == nil {
				t.Fatal("expected parsed value")
			}
			if *fields.ClaimedAmountValue != tt.wantValue {
				t.Errorf("value = %v, want %v", *fields.ClaimedAmountValue, tt.wantValue)
			}
		})
	}

	fields := e.Extract("no money talk here")
	if fields.ClaimedAmountText != nil || fields.ClaimedAmountValue != nil {
		t.Error("expected both amount fields absent")
	}
}

func TestFieldExtractor_IncidentType(t *testing.T) {
	e := NewFieldExtractor(nil)

	tests := []struct {
		name string
		text string
		want model.IncidentType
	}{
		{"theft", "vehicle stolen from parking", model.IncidentTheft},
		{"collision", "crash on the highway", model.IncidentCollision},
		{"fire", "kitchen fire caused damage", model.IncidentFire},
		{"water", "basement flood overnight", model.IncidentWater},
		{"water damage phrase", "extensive water damage in the hall", model.IncidentWater},
		{"other", "hail dented the roof", model.IncidentOther},
		{"theft outranks fire", "stolen car later found on fire", model.IncidentTheft},
		{"whole word only", "firefighter training exercise", model.IncidentOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			if fields.IncidentType != tt.want {
				t.Errorf("incident type = %q, want %q", fields.IncidentType, tt.want)
			}
		})
	}
}

func TestFieldExtractor_Evidence(t *testing.T) {
	e := NewFieldExtractor(nil)

	fields := e.Extract("Police report: FIR filed. Photos attached.")
	if !fields.HasPoliceReport {
		t.Error("expected police report")
	}
	if !fields.HasPhotos {
		t.Error("expected photos")
	}

	// Evidence keywords are substring matches, quirks included: "fir"
	// matches inside "confirmed".
	fields = e.Extract("loss confirmed by the adjuster")
	if !fields.HasPoliceReport {
		t.Error("substring matching should fire on 'confirmed'")
	}

	fields = e.Extract("nothing to see")
	if fields.HasPoliceReport || fields.HasPhotos {
		t.Error("expected no evidence markers")
	}
}

func TestFieldExtractor_EmptyInput(t *testing.T) {
	e := NewFieldExtractor(nil)
	fields := e.Extract("")

	if fields.PolicyNumber != nil || fields.PolicyholderName != nil ||
		fields.IncidentDate != nil || fields.SubmissionDate != nil ||
		fields.ContactPhone != nil || fields.ClaimedAmountText != nil ||
		fields.ClaimedAmountValue != nil {
		t.Error("all optional fields must be absent for empty input")
	}
	if fields.IncidentType != model.IncidentOther {
		t.Errorf("incident type = %q, want %q", fields.IncidentType, model.IncidentOther)
	}
	if fields.HasPoliceReport || fields.HasPhotos {
		t.Error("evidence booleans must be false for empty input")
	}
}

func TestLoadLexicon_PartialOverride(t *testing.T) {
	path := t.TempDir() + "/lexicon.yaml"
	content := `incidents:
  - type: hail
    keywords: [hail, hailstorm]
  - type: fire
    keywords: [fire]
`
	if err := writeTestFile(path, content); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}

	if len(lex.Incidents) != 2 {
		t.Fatalf("expected 2 incident categories, got %d", len(lex.Incidents))
	}
	if lex.Incidents[0].Type != model.IncidentType("hail") {
		t.Errorf("unexpected first category %q", lex.Incidents[0].Type)
	}

	// Unspecified sections keep the defaults.
	if len(lex.Police) == 0 || len(lex.Photos) == 0 {
		t.Error("expected default police/photo keywords to be retained")
	}

	e := NewFieldExtractor(lex)
	fields := e.Extract("hailstorm cracked the windshield")
	if fields.IncidentType != model.IncidentType("hail") {
		t.Errorf("incident type = %q, want hail", fields.IncidentType)
	}
}
