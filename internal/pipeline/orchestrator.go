package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/outline"
)

// Orchestrator manages async outline jobs for the HTTP server: a bounded
// queue feeding a fixed worker pool, with job state kept in memory until
// TTL eviction.
type Orchestrator struct {
	jobs  *JobStore
	queue chan *Job
	ext   *outline.Extractor
	stats *Stats
	log   *slog.Logger
	cfg   config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOrchestrator(cfg config.Config, ext *outline.Extractor, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		ext:   ext,
		stats: NewStats(0),
		log:   log,
		cfg:   cfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					o.process(job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the worker pool.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.Fail("job queue is full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID, nil if unknown or expired.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats exposes per-document extraction latencies.
func (o *Orchestrator) Stats() *Stats {
	return o.stats
}

func (o *Orchestrator) process(job *Job) {
	log := o.log.With("job_id", job.ID, "file", job.Filename)
	job.SetStatus(StatusExtracting)

	start := time.Now()
	res, err := o.ext.ExtractReader(bytes.NewReader(job.FileData()), job.Filename)
	o.stats.Record(time.Since(start).Milliseconds())

	if err != nil {
		log.Error("outline extraction failed", "error", err)
		job.Fail(err.Error())
		return
	}

	job.Complete(res)
	log.Info("outline complete", "title", res.Title, "headings", len(res.Outline))
}
