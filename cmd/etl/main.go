// Command etl converts a raw race-results capture into the canonical CSV and,
// when enabled, publishes the normalized records to Kafka.
//
// Usage:
//
//	go run ./cmd/etl -in data/raw_capture.txt -out results.csv
//
// The input format, forced-DNF bib list, and Kafka sink come from the
// RACEETL_ environment (see internal/config).
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	kafkaadapter "github.com/couchcryptid/race-results-etl/internal/adapter/kafka"
	"github.com/couchcryptid/race-results-etl/internal/config"
	"github.com/couchcryptid/race-results-etl/internal/observability"
	"github.com/couchcryptid/race-results-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	in := flag.String("in", cfg.RawInput, "path to the raw capture (overrides RACEETL_RAW_INPUT)")
	out := flag.String("out", "-", "path for the canonical CSV, or - for stdout")
	flag.Parse()

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if *in == "" {
		logger.Error("no input: set -in or RACEETL_RAW_INPUT")
		os.Exit(1)
	}

	input, err := os.Open(*in)
	if err != nil {
		logger.Error("open input", "error", err)
		os.Exit(1)
	}
	defer input.Close()

	var output io.Writer = os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Error("create output", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		output = f
	}

	var extractor pipeline.Extractor
	switch cfg.RawFormat {
	case "csv":
		extractor = pipeline.NewRowSource(input)
	default:
		extractor = pipeline.NewCopyPasteSource(input, cfg.DNFBibs)
	}

	loaders := []pipeline.Loader{pipeline.NewCSVSink(output)}
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger, metrics)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		loaders = append(loaders, writer)
		logger.Info("kafka sink enabled", "topic", cfg.KafkaTopic)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(extractor, loaders, logger, metrics)
	if err := p.Run(ctx); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
