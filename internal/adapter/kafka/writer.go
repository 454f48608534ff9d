// Package kafka publishes canonical race records to a Kafka topic so
// downstream consumers (leaderboards, notification services) can react to a
// freshly normalized result set.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/race-results-etl/internal/config"
	"github.com/couchcryptid/race-results-etl/internal/domain"
	"github.com/couchcryptid/race-results-etl/internal/observability"
)

// messageWriter is the producing side of kafka-go, narrowed for testing.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer produces messages to a Kafka topic.
// It implements pipeline.Loader.
type Writer struct {
	writer  messageWriter
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewWriter creates a Kafka producer for the configured topic.
func NewWriter(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger, metrics: metrics}
}

// Load serializes and publishes the records in a single WriteMessages call
// for efficiency. Messages are keyed by bib so per-participant updates land
// on a stable partition.
func (w *Writer) Load(ctx context.Context, records []domain.RawRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d records: %w", len(records), err)
	}
	w.metrics.RecordsPublished.Add(float64(len(msgs)))
	w.logger.Debug("records published", "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a canonical record into a Kafka message. The
// value is a field-name-to-value JSON object, the key is the bib, and wave,
// level, and processing time ride along as headers.
func serializeToMessage(record domain.RawRecord) (kafkago.Message, error) {
	body := make(map[string]string, domain.FieldCount())
	for _, f := range domain.Fields() {
		body[string(f.Name)] = record.Get(f.Name)
	}
	data, err := json.Marshal(body)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(record.Get(domain.FieldBib)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "wave", Value: []byte(record.Get(domain.FieldWave))},
			{Key: "level", Value: []byte(record.Get(domain.FieldLevel))},
			{Key: "processed_at", Value: []byte(domain.Clock().Now().UTC().Format(time.RFC3339))},
		},
	}, nil
}
