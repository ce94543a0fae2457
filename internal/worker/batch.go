package worker

import (
	"context"

	"github.com/ppiankov/lacph/internal/model"
)

// Querier produces the record of one release date
type Querier interface {
	QueryDate(ctx context.Context, date model.Date) (*model.DailyRecord, error)
}

// DateJob queries one release date
type DateJob struct {
	Index   int
	Date    model.Date
	Querier Querier
}

// Execute executes the query
func (j *DateJob) Execute(ctx context.Context) *DateResult {
	if err := ctx.Err(); err != nil {
		return &DateResult{Index: j.Index, Date: j.Date, Error: err}
	}
	rec, err := j.Querier.QueryDate(ctx, j.Date)
	return &DateResult{
		Index:  j.Index,
		Date:   j.Date,
		Record: rec,
		Error:  err,
	}
}

// DateResult is the outcome of one date: a record or an error
type DateResult struct {
	Index  int
	Date   model.Date
	Record *model.DailyRecord
	Error  error
}

// BatchProcessor queries many dates concurrently
type BatchProcessor struct {
	querier     Querier
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(querier Querier, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		querier:     querier,
		concurrency: concurrency,
	}
}

// ProcessDates queries every date and returns one result per date, in the
// order the dates were given. Dates not reached before ctx is cancelled
// carry the context error.
func (b *BatchProcessor) ProcessDates(ctx context.Context, dates []model.Date) []*DateResult {
	if len(dates) == 0 {
		return []*DateResult{}
	}

	pool := NewPool[*DateResult](ctx, b.concurrency)
	pool.Start()

	collect := pool.Wait
	for i, date := range dates {
		if !pool.Submit(&DateJob{Index: i, Date: date, Querier: b.querier}) {
			collect = pool.Shutdown
			break
		}
	}

	results := make([]*DateResult, len(dates))
	for _, r := range collect() {
		results[r.Index] = r
	}

	for i, r := range results {
		if r != nil {
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		results[i] = &DateResult{Index: i, Date: dates[i], Error: err}
	}

	return results
}

// FirstError returns the error of the earliest failed result
func FirstError(results []*DateResult) error {
	for _, r := range results {
		if r.Error != nil {
			return r.Error
		}
	}
	return nil
}
