package worker

import (
	"context"
	"fmt"

	"github.com/clearclaim/fnoltriage/internal/ingest"
	"github.com/clearclaim/fnoltriage/internal/model"
)

// Processor runs the triage pipeline over one narrative
type Processor interface {
	Process(text string, submitted *model.Date) model.Decision
}

// TriageJob reads one report file and runs it through the pipeline
type TriageJob struct {
	Path      string
	Submitted *model.Date
	Processor Processor
	Limiter   *Limiter
}

// Execute runs the job
func (j *TriageJob) Execute(ctx context.Context) Result {
	if err := j.Limiter.Wait(ctx); err != nil {
		return &TriageResult{Path: j.Path, Err: fmt.Errorf("rate limit: %w", err)}
	}

	text, err := ingest.ReadReport(j.Path)
	if err != nil {
		return &TriageResult{Path: j.Path, Err: err}
	}

	decision := j.Processor.Process(text, j.Submitted)
	return &TriageResult{Path: j.Path, Decision: &decision}
}

// TriageResult is the outcome of one triage job
type TriageResult struct {
	Path     string
	Decision *model.Decision
	Err      error
}

// GetError returns the job error, if any
func (r *TriageResult) GetError() error {
	return r.Err
}

// BatchProcessor triages many report files concurrently
type BatchProcessor struct {
	processor   Processor
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor. reportsPerSecond <= 0
// disables submission throttling.
func NewBatchProcessor(processor Processor, concurrency int, reportsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
		limiter:     NewLimiter(reportsPerSecond, burst),
	}
}

// ProcessPaths triages the given report files on the worker pool. The
// result order is completion order, not input order; each result carries
// its source path.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, submitted *model.Date) []*TriageResult {
	if len(paths) == 0 {
		return []*TriageResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-done:
		}
	}()

	for _, path := range paths {
		pool.Submit(&TriageJob{
			Path:      path,
			Submitted: submitted,
			Processor: b.processor,
			Limiter:   b.limiter,
		})
	}

	results := pool.Wait()

	out := make([]*TriageResult, len(results))
	for i, r := range results {
		out[i] = r.(*TriageResult)
	}
	return out
}

// ProcessDir triages every report file directly under dir
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string, submitted *model.Date) ([]*TriageResult, error) {
	paths, err := ingest.ListReports(dir)
	if err != nil {
		return nil, err
	}
	return b.ProcessPaths(ctx, paths, submitted), nil
}
