package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/forgo/trivia/api/internal/pagination"
	"github.com/forgo/trivia/api/internal/repository"
)

// Counter counts the documents matching a filter
type Counter interface {
	Count(ctx context.Context, filter repository.TriviaFilter) (int64, error)
}

// CollectionStats refreshes the collection size gauge on a fixed interval
type CollectionStats struct {
	counter  Counter
	interval time.Duration
	timeout  time.Duration
	publish  func(int64)
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewCollectionStats creates a new collection stats job
func NewCollectionStats(counter Counter, interval time.Duration) *CollectionStats {
	if interval == 0 {
		interval = 1 * time.Minute
	}
	return &CollectionStats{
		counter:  counter,
		interval: interval,
		timeout:  10 * time.Second,
		publish:  pagination.UpdateTotalCount,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the job. Calling Start on a running job does nothing.
func (j *CollectionStats) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	slog.Info("collection stats job started", slog.Duration("interval", j.interval))
}

// Stop stops the job and waits for an in-flight refresh to finish
func (j *CollectionStats) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	slog.Info("collection stats job stopped")
}

func (j *CollectionStats) run() {
	defer j.wg.Done()

	j.refresh()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.refresh()
		case <-j.stopCh:
			return
		}
	}
}

// refresh counts the whole collection once and publishes the result
func (j *CollectionStats) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	total, err := j.counter.Count(ctx, repository.TriviaFilter{})
	if err != nil {
		slog.Warn("collection stats refresh failed", slog.String("error", err.Error()))
		return
	}
	j.publish(total)
}
