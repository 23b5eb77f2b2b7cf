package extract

import (
	"testing"
	"time"

	"github.com/clearclaim/fnoltriage/internal/model"
)

func TestParseDate_NumericFormats(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     model.Date
	}{
		{"slash day first", "happened on 09/12/2025 around noon", model.NewDate(2025, time.December, 9)},
		{"dash day first", "09-12-2025", model.NewDate(2025, time.December, 9)},
		{"two digit year", "9/12/25", model.NewDate(2025, time.December, 9)},
		{"iso", "2025-12-09", model.NewDate(2025, time.December, 9)},
		{"single digit day and month", "1/2/2025", model.NewDate(2025, time.February, 1)},
		{"month first when day first impossible", "12/25/2025", model.NewDate(2025, time.December, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.fragment)
			if !ok {
				t.Fatalf("ParseDate(%q) found nothing", tt.fragment)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestParseDate_DayFirstWinsForAmbiguousTokens(t *testing.T) {
	// 09/12/2025 is valid both day-first and month-first. The layout order
	// makes day-first win; callers depend on this exact behavior.
	got, ok := ParseDate("09/12/2025")
	if !ok {
		t.Fatal("expected a date")
	}
	want := model.NewDate(2025, time.December, 9)
	if got != want {
		t.Errorf("got %v, want %v (day-first must win)", got, want)
	}
}

func TestParseDate_MonthName(t *testing.T) {
	got, ok := ParseDate("reported on 9 December 2025 by phone")
	if !ok {
		t.Fatal("expected a date")
	}
	want := model.NewDate(2025, time.December, 9)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDate_AbbreviatedMonthNameIsSkipped(t *testing.T) {
	// The month-name layout requires full names; "Dec" matches the token
	// regex but fails the parse and the candidate is dropped.
	if _, ok := ParseDate("9 Dec 2025"); ok {
		t.Error("abbreviated month names should not parse")
	}
}

func TestParseDate_NotFound(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
	}{
		{"empty", ""},
		{"no digits", "no date here"},
		{"phone number", "+919876543210"},
		{"invalid numeric token", "99/99/9999"},
		{"year first with slashes", "2025/13/45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseDate(tt.fragment); ok {
				t.Errorf("ParseDate(%q) unexpectedly found a date", tt.fragment)
			}
		})
	}
}

func TestParseDate_SecondPatternAfterFirstFails(t *testing.T) {
	// The first numeric token is unparseable in every layout; the year-first
	// pattern still gets its chance on the same fragment.
	got, ok := ParseDate("window 40/40/4040 then 2025-01-15")
	if !ok {
		t.Fatal("expected the year-first pattern to recover a date")
	}
	want := model.NewDate(2025, time.January, 15)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
