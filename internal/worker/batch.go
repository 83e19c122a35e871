package worker

import (
	"context"
	"sort"

	"github.com/lvargas/rosterscan/internal/submit"
)

// Submitter is the slice of the submit client the processor needs
type Submitter interface {
	SubmitBatch(ctx context.Context, filings []submit.Filing) (*submit.BatchResponse, error)
	Endpoint() string
}

// BatchOutcome is the result of submitting one batch
type BatchOutcome struct {
	Batch    int // 0-based batch index
	Filings  []submit.Filing
	Response *submit.BatchResponse
	Error    error
}

// Err implements Result
func (o *BatchOutcome) Err() error {
	return o.Error
}

// BatchProcessor splits a filing list into fixed-size batches and submits
// them through the worker pool, pacing requests with the rate limiter so
// the endpoint is not overwhelmed.
type BatchProcessor struct {
	submitter Submitter
	batchSize int
	workers   int
	limiter   *Limiter
}

// NewBatchProcessor creates a processor with the given batch size, worker
// count and request rate.
func NewBatchProcessor(s Submitter, batchSize, workers int, requestsPerSecond float64, burst int) *BatchProcessor {
	if batchSize <= 0 {
		batchSize = 10
	}

	return &BatchProcessor{
		submitter: s,
		batchSize: batchSize,
		workers:   workers,
		limiter:   NewLimiter(requestsPerSecond, burst),
	}
}

type submitBatchJob struct {
	processor *BatchProcessor
	batch     int
	filings   []submit.Filing
}

// Execute submits one batch after rate-limit clearance
func (j *submitBatchJob) Execute(ctx context.Context) Result {
	outcome := &BatchOutcome{Batch: j.batch, Filings: j.filings}

	if err := j.processor.limiter.Wait(ctx, j.processor.submitter.Endpoint()); err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Response, outcome.Error = j.processor.submitter.SubmitBatch(ctx, j.filings)
	return outcome
}

// Process submits every filing and returns per-batch outcomes in batch
// order.
func (b *BatchProcessor) Process(ctx context.Context, filings []submit.Filing) []*BatchOutcome {
	if len(filings) == 0 {
		return nil
	}

	batches := (len(filings) + b.batchSize - 1) / b.batchSize
	pool := NewPoolSize(b.workers, batches)
	pool.Start()

	batch := 0
	for start := 0; start < len(filings); start += b.batchSize {
		end := start + b.batchSize
		if end > len(filings) {
			end = len(filings)
		}

		pool.Submit(&submitBatchJob{processor: b, batch: batch, filings: filings[start:end]})
		batch++
	}

	results := pool.Wait()

	outcomes := make([]*BatchOutcome, 0, len(results))
	for _, r := range results {
		outcomes = append(outcomes, r.(*BatchOutcome))
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Batch < outcomes[j].Batch })

	return outcomes
}
