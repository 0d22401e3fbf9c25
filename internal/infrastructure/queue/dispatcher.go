package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsphere/mentorship-api/internal/api/metrics"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

const (
	defaultWorkers     = 4
	defaultMaxAttempts = 5
	defaultBackoff     = 500 * time.Millisecond
	maxBackoff         = 30 * time.Second
	channelBuffer      = 256
)

// Options tunes the retry behaviour. Zero values select the defaults.
type Options struct {
	Workers     int
	MaxAttempts int
	Backoff     time.Duration // first delay; doubles per attempt up to maxBackoff
}

// Dispatcher retries failed mentor rating recomputations in the background.
// Mentor ids are routed to a fixed set of workers by consistent hashing, so
// retries for one mentor never run concurrently with each other. A mentor that
// is already waiting in the queue is not enqueued twice.
type Dispatcher struct {
	workers     []chan string
	aggregator  ports.RatingAggregator
	maxAttempts int
	backoff     time.Duration
	log         zerolog.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

// NewDispatcher creates a Dispatcher with opts.Workers sharded workers.
func NewDispatcher(aggregator ports.RatingAggregator, opts Options, log zerolog.Logger) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultBackoff
	}
	d := &Dispatcher{
		workers:     make([]chan string, opts.Workers),
		aggregator:  aggregator,
		maxAttempts: opts.MaxAttempts,
		backoff:     opts.Backoff,
		log:         log,
		pending:     make(map[string]struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines and blocks until ctx is cancelled and
// every worker has returned.
func (d *Dispatcher) Start(ctx context.Context) {
	var wg sync.WaitGroup
	for i, ch := range d.workers {
		wg.Add(1)
		go func(id int, ch <-chan string) {
			defer wg.Done()
			d.runWorker(ctx, id, ch)
		}(i, ch)
	}
	wg.Wait()
}

// Schedule queues a recomputation for mentorID. It never blocks: when the
// worker's buffer is full the request is dropped and logged.
func (d *Dispatcher) Schedule(mentorID string) {
	d.mu.Lock()
	if _, ok := d.pending[mentorID]; ok {
		d.mu.Unlock()
		return
	}
	d.pending[mentorID] = struct{}{}
	d.mu.Unlock()

	idx := d.shardIndex(mentorID)
	select {
	case d.workers[idx] <- mentorID:
		metrics.RatingRetriesTotal.WithLabelValues("scheduled").Inc()
		metrics.RecomputeQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.done(mentorID)
		metrics.RatingRetriesTotal.WithLabelValues("dropped").Inc()
		d.log.Error().Str("mentor_id", mentorID).Int("worker_id", idx).Msg("recompute queue full, retry dropped")
	}
}

// shardIndex maps a mentor id deterministically to a worker index.
func (d *Dispatcher) shardIndex(mentorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(mentorID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) done(mentorID string) {
	d.mu.Lock()
	delete(d.pending, mentorID)
	d.mu.Unlock()
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case mentorID := <-ch:
			metrics.RecomputeQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			// a failure arriving from now on must queue a fresh retry
			d.done(mentorID)
			d.retry(ctx, id, mentorID)
		}
	}
}

// retry calls Recompute until it succeeds, attempts run out, or ctx ends.
func (d *Dispatcher) retry(ctx context.Context, workerID int, mentorID string) {
	delay := d.backoff
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		summary, err := d.aggregator.Recompute(ctx, mentorID)
		if err == nil {
			metrics.RatingRetriesTotal.WithLabelValues("succeeded").Inc()
			d.log.Info().
				Str("mentor_id", mentorID).
				Int("attempt", attempt).
				Float64("rating", summary.Average).
				Int("rating_count", summary.Count).
				Msg("rating recompute retry succeeded")
			return
		}

		d.log.Warn().Err(err).
			Str("mentor_id", mentorID).
			Int("attempt", attempt).
			Int("worker_id", workerID).
			Msg("rating recompute retry failed")

		delay *= 2
		if delay > maxBackoff {
			delay = maxBackoff
		}
	}

	metrics.RatingRetriesTotal.WithLabelValues("failed").Inc()
	d.log.Error().Str("mentor_id", mentorID).Int("attempts", d.maxAttempts).Msg("rating recompute gave up")
}
