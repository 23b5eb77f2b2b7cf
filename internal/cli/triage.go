package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearclaim/fnoltriage/internal/ingest"
	"github.com/clearclaim/fnoltriage/internal/model"
	"github.com/clearclaim/fnoltriage/internal/pipeline"
	"github.com/clearclaim/fnoltriage/internal/store"
)

var (
	outJSON        string
	outMD          string
	submissionDate string
	dbPath         string
	lexiconPath    string
	cacheEnabled   bool
	cacheDir       string
	noFooter       bool
)

// triageCmd represents the triage command
var triageCmd = &cobra.Command{
	Use:   "triage <file|->",
	Short: "Triage a single FNOL report",
	Long: `Triage processes one FNOL narrative:
- Extract policy, policyholder, dates, contact, amount, incident type
- Validate required fields and cross-field consistency
- Compute a rule-based severity score in [0, 1]
- Route to fast_track or manual_review

Reads from stdin when the argument is "-". HTML input files are reduced
to visible text first.

Example:
  fnoltriage triage claim.txt
  fnoltriage triage claim.txt --submission-date 2025-12-09 --json decision.json
  cat claim.txt | fnoltriage triage - --md decision.md
  fnoltriage triage claim.html --db decisions.db`,
	Args: cobra.ExactArgs(1),
	RunE: runTriage,
}

func init() {
	rootCmd.AddCommand(triageCmd)

	triageCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	triageCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	triageCmd.Flags().StringVar(&submissionDate, "submission-date", "", "authoritative submission date (YYYY-MM-DD), overrides any date found in the text")
	triageCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to persist the decision (optional)")
	triageCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML keyword lexicon override (optional)")
	triageCmd.Flags().BoolVar(&cacheEnabled, "cache", false, "enable the decision cache")
	triageCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (with --cache; default memory only)")
	triageCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runTriage(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx := context.Background()

	cfg := buildConfig()

	submitted, err := parseSubmissionDate(submissionDate)
	if err != nil {
		return err
	}

	var text string
	if source == "-" {
		source = "stdin"
		text, err = ingest.ReadFrom(os.Stdin)
	} else {
		text, err = ingest.ReadReport(source)
	}
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	decision := p.Process(text, submitted)

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracted incident type: %s\n", decision.Fields.IncidentType)
		fmt.Fprintf(os.Stderr, "Validation flags: %d\n", len(decision.Flags))
		fmt.Fprintf(os.Stderr, "Severity: %.2f\n", decision.Severity)
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(&decision, outJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(&decision, source, outMD); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", outMD)
		}
	}

	if cfg.Store.Path != "" {
		record, err := persistDecision(ctx, cfg.Store.Path, source, decision)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved decision %s\n", record.ID)
	}

	renderer.RenderSummary(os.Stdout, &decision, source)
	return nil
}

func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = cacheEnabled
	cfg.Cache.Dir = cacheDir
	cfg.Store.Path = dbPath
	cfg.Lexicon.Path = lexiconPath
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	return cfg
}

func parseSubmissionDate(s string) (*model.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := model.ParseISODate(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --submission-date: %w", err)
	}
	return &d, nil
}

func persistDecision(ctx context.Context, path, source string, decision model.Decision) (model.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	s, err := store.OpenSQLite(ctx, path)
	if err != nil {
		return model.Record{}, fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = s.Close() }()

	record, err := s.Save(ctx, source, decision)
	if err != nil {
		return model.Record{}, fmt.Errorf("save decision: %w", err)
	}
	return record, nil
}
