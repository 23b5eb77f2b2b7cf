package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearclaim/fnoltriage/internal/model"
	"github.com/clearclaim/fnoltriage/internal/pipeline"
	"github.com/clearclaim/fnoltriage/internal/store"
	"github.com/clearclaim/fnoltriage/internal/worker"
)

var (
	concurrency      int
	outputDir        string
	batchTimeout     time.Duration
	reportsPerSecond float64
	burstSize        int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|file...>",
	Short: "Triage many FNOL reports in parallel",
	Long: `Batch triages FNOL report files concurrently. The argument is either
a single directory or an explicit list of files:
- For a directory, collect .txt, .md, .html and .htm files directly under it
- Process them with a configurable worker count
- Optionally throttle hand-off with --rate for downstream intake systems
- Write one JSON decision per report, plus an optional SQLite database

Example:
  fnoltriage batch ./claims
  fnoltriage batch claim1.txt claim2.html
  fnoltriage batch ./claims --concurrency 8 --output-dir ./decisions
  fnoltriage batch ./claims --rate 10 --db decisions.db`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./fnoltriage-decisions", "output directory for decision files")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&reportsPerSecond, "rate", 0, "max reports handed off per second (0 = unlimited)")
	batchCmd.Flags().IntVar(&burstSize, "burst", 5, "rate limiter burst size")

	batchCmd.Flags().StringVar(&submissionDate, "submission-date", "", "authoritative submission date (YYYY-MM-DD) applied to every report")
	batchCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to persist decisions (optional)")
	batchCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML keyword lexicon override (optional)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimiting.ReportsPerSecond = reportsPerSecond
	cfg.RateLimiting.BurstSize = burstSize

	submitted, err := parseSubmissionDate(submissionDate)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Input:       %s\n", strings.Join(args, ", "))
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir:  %s\n", outputDir)
	if reportsPerSecond > 0 {
		fmt.Fprintf(os.Stderr, "Rate:        %.1f reports/s (burst %d)\n", reportsPerSecond, burstSize)
	}
	fmt.Fprintln(os.Stderr)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	var db store.Store
	if cfg.Store.Path != "" {
		db, err = store.OpenSQLite(ctx, cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = db.Close() }()
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers,
		cfg.RateLimiting.ReportsPerSecond, cfg.RateLimiting.BurstSize)

	var results []*worker.TriageResult
	if info, statErr := os.Stat(args[0]); len(args) == 1 && statErr == nil && info.IsDir() {
		results, err = processor.ProcessDir(ctx, args[0], submitted)
		if err != nil {
			return err
		}
	} else {
		results = processor.ProcessPaths(ctx, args, submitted)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0
	reviewCount := 0

	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Path, result.Err)
			continue
		}
		successCount++

		jsonPath := filepath.Join(outputDir, decisionFilename(result.Path))
		if err := renderer.RenderJSON(result.Decision, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write JSON: %v\n", result.Path, err)
			continue
		}

		if db != nil {
			if _, err := db.Save(ctx, result.Path, *result.Decision); err != nil {
				fmt.Fprintf(os.Stderr, "FAIL %s: save decision: %v\n", result.Path, err)
				continue
			}
		}

		if result.Decision.Workflow == model.WorkflowManualReview {
			reviewCount++
		}
		fmt.Fprintf(os.Stderr, "OK   %s -> %s (severity %.2f)\n",
			result.Path, result.Decision.Workflow, result.Decision.Severity)
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Total:          %d reports\n", len(results))
	fmt.Fprintf(os.Stderr, "Triaged:        %d\n", successCount)
	fmt.Fprintf(os.Stderr, "Manual review:  %d\n", reviewCount)
	fmt.Fprintf(os.Stderr, "Failures:       %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "Output:         %s\n", outputDir)

	return nil
}

// decisionFilename maps a report path to its decision file name.
func decisionFilename(reportPath string) string {
	base := filepath.Base(reportPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".decision.json"
}
