package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/lines"
	"github.com/dgallion1/outliner/internal/outline"
)

// Summary counts the outcome of one batch run. Failed documents still get
// an output file (the error sentinel), so Processed+Failed equals the
// number of supported inputs.
type Summary struct {
	Processed int
	Failed    int
	Skipped   int
}

// Runner drives outline extraction for a directory of documents: every
// supported file in the input directory yields one JSON outline in the
// output directory. Documents are independent, so they fan out to a worker
// pool; one document's failure is terminal for that document only.
type Runner struct {
	cfg   config.Config
	ext   *outline.Extractor
	stats *Stats
	log   *slog.Logger
}

func NewRunner(cfg config.Config, ext *outline.Extractor, log *slog.Logger) *Runner {
	return &Runner{
		cfg:   cfg,
		ext:   ext,
		stats: NewStats(0),
		log:   log,
	}
}

// Stats exposes per-document extraction latencies for this runner.
func (r *Runner) Stats() *Stats {
	return r.stats
}

// Run processes the input directory (non-recursive) and writes one
// <name>.json per supported input.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	var paths []string
	summary := Summary{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !lines.IsSupportedExtension(e.Name()) {
			summary.Skipped++
			continue
		}
		paths = append(paths, filepath.Join(r.cfg.InputDir, e.Name()))
	}
	if len(paths) == 0 {
		return summary, nil
	}

	workers := r.cfg.WorkerCount
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				failed := r.processFile(path)
				mu.Lock()
				if failed {
					summary.Failed++
				} else {
					summary.Processed++
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, p := range paths {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- p:
		}
	}
	close(jobs)
	wg.Wait()

	return summary, ctx.Err()
}

// processFile writes one outline JSON for a document. A failure produces
// the error sentinel in place of the outline and is logged, never
// propagated: the rest of the batch keeps going.
func (r *Runner) processFile(path string) (failed bool) {
	name := filepath.Base(path)
	log := r.log.With("file", name)

	start := time.Now()
	res, err := r.ext.ExtractFile(path)
	r.stats.Record(time.Since(start).Milliseconds())
	if err != nil {
		log.Error("outline extraction failed", "error", err)
		res = outline.ErrorResult()
		failed = true
	}

	outName := strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
	outPath := filepath.Join(r.cfg.OutputDir, outName)
	if err := WriteResult(outPath, res); err != nil {
		log.Error("write outline failed", "error", err)
		return true
	}

	log.Info("outline written",
		"output", outName,
		"title", res.Title,
		"headings", len(res.Outline),
	)
	return failed
}

// WriteResult serializes an outline result to disk as indented JSON.
func WriteResult(path string, res outline.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal outline: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
