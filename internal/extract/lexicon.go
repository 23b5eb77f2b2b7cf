package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clearclaim/fnoltriage/internal/model"
)

// IncidentCategory pairs an incident type with the whole-word keywords that
// select it. Categories are evaluated in slice order and the first match
// wins, so more specific categories must come first.
type IncidentCategory struct {
	Type     model.IncidentType `yaml:"type"`
	Keywords []string           `yaml:"keywords"`
}

// Lexicon holds the keyword sets the extractor matches against. The regex
// field rules are fixed; only these keyword lists are configurable.
type Lexicon struct {
	Incidents []IncidentCategory `yaml:"incidents"`
	Police    []string           `yaml:"police"`    // Substring match, not whole-word
	Photos    []string           `yaml:"photos"`    // Substring match, not whole-word
}

// DefaultLexicon returns the built-in keyword sets.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Incidents: []IncidentCategory{
			{Type: model.IncidentTheft, Keywords: []string{"theft", "stolen"}},
			{Type: model.IncidentCollision, Keywords: []string{"collision", "accident", "crash"}},
			{Type: model.IncidentFire, Keywords: []string{"fire", "burn"}},
			{Type: model.IncidentWater, Keywords: []string{"flood", "water damage"}},
		},
		Police: []string{"police report", "fir", "police"},
		Photos: []string{"photo", "image", "picture", "attached"},
	}
}

// LoadLexicon reads a lexicon from a YAML file. Missing sections fall back
// to the defaults so a file can override just one keyword set.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	def := DefaultLexicon()
	if len(lex.Incidents) == 0 {
		lex.Incidents = def.Incidents
	}
	if len(lex.Police) == 0 {
		lex.Police = def.Police
	}
	if len(lex.Photos) == 0 {
		lex.Photos = def.Photos
	}

	return &lex, nil
}
