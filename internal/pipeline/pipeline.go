package pipeline

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/clearclaim/fnoltriage/internal/cache"
	"github.com/clearclaim/fnoltriage/internal/extract"
	"github.com/clearclaim/fnoltriage/internal/model"
	"github.com/clearclaim/fnoltriage/internal/route"
	"github.com/clearclaim/fnoltriage/internal/score"
	"github.com/clearclaim/fnoltriage/internal/validate"
)

// The fixed note attached to every decision. Callers surface it so that a
// reviewer reading a record knows how it was produced.
var explanation = []string{
	"Extraction: deterministic regex + keyword matching.",
	"Validation: flags for missing/unparseable/inconsistent fields.",
	"Routing: rule-based severity + presence of flags.",
}

// Pipeline composes normalize -> extract -> validate -> score -> route into
// a single entry point. It holds no mutable state between calls; the same
// narrative and submission date always produce the same decision.
type Pipeline struct {
	extractor *extract.FieldExtractor
	validator *validate.Validator
	scorer    *score.Scorer
	router    *route.Router
	cache     cache.Cache
	cacheTTL  time.Duration
}

// New creates a pipeline from configuration: lexicon override, optional
// decision cache.
func New(cfg *model.Config) (*Pipeline, error) {
	lex := extract.DefaultLexicon()
	if cfg.Lexicon.Path != "" {
		loaded, err := extract.LoadLexicon(cfg.Lexicon.Path)
		if err != nil {
			return nil, fmt.Errorf("lexicon: %w", err)
		}
		lex = loaded
	}

	p := &Pipeline{
		extractor: extract.NewFieldExtractor(lex),
		validator: validate.NewValidator(),
		scorer:    score.NewScorer(),
		router:    route.NewRouter(),
		cacheTTL:  cfg.Cache.TTL,
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			p.cache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			p.cache = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
		}
	}

	return p, nil
}

// Process runs the full triage pipeline over one narrative. A non-nil
// submitted date overrides whatever submission date the extractor finds.
// Process never fails: missing data degrades to absent fields and flags,
// and the worst outcome is a manual_review routing.
func (p *Pipeline) Process(text string, submitted *model.Date) model.Decision {
	normalized := extract.Normalize(text)

	var key string
	if p.cache != nil {
		dateKey := ""
		if submitted != nil {
			dateKey = submitted.String()
		}
		key = cache.DecisionKey(normalized, dateKey)
		if data, found := p.cache.Get(key); found {
			var cached model.Decision
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
			// Corrupt entry; fall through and recompute.
			_ = p.cache.Delete(key)
		}
	}

	fields := p.extractor.Extract(normalized)
	if submitted != nil {
		d := *submitted
		fields.SubmissionDate = &d
	}

	validation := p.validator.Validate(fields)
	severity := p.scorer.Score(fields)
	workflow, reason := p.router.Route(validation.Flags, severity, fields.AmountOrZero())

	flags := validation.Flags
	if flags == nil {
		flags = []model.Flag{}
	}
	reasons := validation.Reasons
	if reasons == nil {
		reasons = []string{}
	}

	decision := model.Decision{
		Fields:         fields,
		Flags:          flags,
		Reasons:        reasons,
		Severity:       round2(severity),
		Workflow:       workflow,
		WorkflowReason: reason,
		Explanation:    explanation,
	}

	if p.cache != nil {
		if data, err := json.Marshal(decision); err == nil {
			_ = p.cache.Set(key, data, p.cacheTTL)
		}
	}

	return decision
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
