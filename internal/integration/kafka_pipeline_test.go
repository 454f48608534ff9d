//go:build integration

// Package integration exercises the full pipeline against a real Kafka broker
// started through testcontainers. Run with:
//
//	go test -tags integration ./internal/integration/
package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	kafkaadapter "github.com/couchcryptid/race-results-etl/internal/adapter/kafka"
	"github.com/couchcryptid/race-results-etl/internal/config"
	"github.com/couchcryptid/race-results-etl/internal/domain"
	"github.com/couchcryptid/race-results-etl/internal/observability"
	"github.com/couchcryptid/race-results-etl/internal/pipeline"
)

const testTopic = "race-results-test"

// capture is a two-runner raw copy-paste fixture.
const capture = `Wai Ching Soh
M 29Bib 19Kuala Lumpur, Selangor, MYS
1
1
1
10:36
MIN/MI
55:58
Andrea Mayr
F 44Bib 26vienna, w, AUT
2
1
1
11:23
MIN/MI
1:00:02
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node Kafka broker in a container and returns its
// bootstrap address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("test-cluster"),
	)
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestPipelineEndToEnd runs the full capture-to-Kafka pipeline against a real
// broker and verifies the published records.
func TestPipelineEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	cfg := config.New()
	cfg.KafkaEnabled = true
	cfg.KafkaBrokers = []string{broker}
	cfg.KafkaTopic = testTopic

	writer := kafkaadapter.NewWriter(cfg, discardLogger(), observability.NewMetricsForTesting())
	t.Cleanup(func() { _ = writer.Close() })

	var csvOut bytes.Buffer
	p := pipeline.New(
		pipeline.NewCopyPasteSource(strings.NewReader(capture), nil),
		[]pipeline.Loader{pipeline.NewCSVSink(&csvOut), writer},
		discardLogger(),
		observability.NewMetricsForTesting(),
	)
	require.NoError(t, p.Run(ctx))
	require.NoError(t, p.CheckReadiness(ctx))

	// The CSV sink saw both records.
	assert.Equal(t, 3, strings.Count(csvOut.String(), "\n"), "header plus two records")

	// Read both messages back from the topic.
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	expected := map[string]string{
		"19": "ELITEMEN",
		"26": "ELITEWOMEN",
	}
	for range expected {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err)

		headers := make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}

		wave, ok := expected[string(msg.Key)]
		require.True(t, ok, "unexpected key %q", msg.Key)
		assert.Equal(t, wave, headers["wave"])
		assert.Equal(t, string(domain.LevelFullCourse), headers["level"])

		_, err = time.Parse(time.RFC3339, headers["processed_at"])
		assert.NoError(t, err, "processed_at should be valid RFC3339")

		var body map[string]string
		require.NoError(t, json.Unmarshal(msg.Value, &body))
		assert.Equal(t, string(msg.Key), body[string(domain.FieldBib)])
		assert.NotEmpty(t, body[string(domain.FieldRunnerName)])
	}
}
