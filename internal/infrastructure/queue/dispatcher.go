package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 64
)

// Importer registers a single bulk-import record.
type Importer interface {
	ImportOne(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error)
}

// ImportDispatcher fans a batch of user records out to a fixed set of workers
// using consistent hashing on user_id. Records sharing an id land on the same
// worker in input order, so the first one wins and later ones fail as
// duplicates.
type ImportDispatcher struct {
	workers  int
	importer Importer
	log      zerolog.Logger
}

type importJob struct {
	index int
	input ports.RegisterUserInput
}

// NewImportDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewImportDispatcher(numWorkers int, importer Importer, log zerolog.Logger) *ImportDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &ImportDispatcher{workers: numWorkers, importer: importer, log: log}
}

// Run imports records and blocks until every record has been attempted.
// Per-record failures are collected in input order and never stop the batch.
func (d *ImportDispatcher) Run(ctx context.Context, records []ports.RegisterUserInput) ports.ImportResult {
	failures := make([]error, len(records))

	var wg sync.WaitGroup
	shards := make([]chan importJob, d.workers)
	for i := range shards {
		shards[i] = make(chan importJob, channelBuffer)
		wg.Add(1)
		go func(id int, ch <-chan importJob) {
			defer wg.Done()
			d.runWorker(ctx, id, ch, failures)
		}(i, shards[i])
	}

	for i, rec := range records {
		shards[d.shardIndex(rec.UserID)] <- importJob{index: i, input: rec}
	}
	for _, ch := range shards {
		close(ch)
	}
	wg.Wait()

	result := ports.ImportResult{Errors: []string{}}
	for i, err := range failures {
		if err == nil {
			result.Imported++
			continue
		}
		result.Errors = append(result.Errors, fmt.Sprintf("record %d (%s): %v", i+1, records[i].UserID, err))
	}
	return result
}

// shardIndex maps a user id deterministically to a worker index.
func (d *ImportDispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(d.workers))
}

// runWorker drains ch even after ctx is cancelled so the producer never blocks.
// Each job owns its own slot in failures.
func (d *ImportDispatcher) runWorker(ctx context.Context, id int, ch <-chan importJob, failures []error) {
	for job := range ch {
		if err := ctx.Err(); err != nil {
			failures[job.index] = err
			continue
		}
		if _, err := d.importer.ImportOne(ctx, job.input); err != nil {
			failures[job.index] = err
			d.log.Warn().Err(err).
				Str("user_id", job.input.UserID).
				Int("worker_id", id).
				Msg("user import failed")
		}
	}
}
