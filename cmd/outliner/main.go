package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/pipeline"
)

// Batch driver: reads every supported document in the input directory and
// writes one JSON outline per document into the output directory.
func main() {
	cfg := config.Load()

	inputDir := flag.String("in", cfg.InputDir, "Input directory of documents")
	outputDir := flag.String("out", cfg.OutputDir, "Output directory for outline JSON files")
	workers := flag.Int("workers", cfg.WorkerCount, "Number of concurrent documents")
	readingOrder := flag.Bool("reading-order", cfg.SortMode == "reading",
		"Keep per-page discovery order instead of sorting headings by text")
	flag.Parse()

	cfg.InputDir = *inputDir
	cfg.OutputDir = *outputDir
	if *workers > 0 {
		cfg.WorkerCount = *workers
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	mode := outline.SortPageText
	if *readingOrder {
		mode = outline.SortReadingOrder
	}
	extractor := outline.NewExtractor(log, outline.WithSortMode(mode))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := pipeline.NewRunner(cfg, extractor, log)
	summary, err := runner.Run(ctx)
	if err != nil {
		log.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	stats := runner.Stats().Snapshot()
	log.Info("batch complete",
		"processed", summary.Processed,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"avg_ms", stats.AvgMs,
		"p95_ms", stats.P95Ms,
	)
}
