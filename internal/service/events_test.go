package service

import (
	"context"
	"testing"
	"time"

	"github.com/LucasRomanSaad/stoicChatBOT/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"
)

func TestIngestionEventRoundTrip(t *testing.T) {
	const topic = "INGESTION_COMPLETED"

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer pubSub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, topic)
	require.NoError(t, err)

	publisher := NewPublisherService(pubSub, topic, nopLogger{})
	runRepo := &fakeRunRepository{}
	consumer := NewConsumerService(pubSub, topic, runRepo, nopLogger{})

	evt := events.NewBaseEvent(topic, map[string]interface{}{
		"processed_files": []string{"meditations.pdf"},
		"skipped_files":   []string{"letters.pdf"},
		"total_chunks":    17,
		"completed_at":    time.Now().UTC(),
	})
	require.NoError(t, publisher.Publish(evt))

	select {
	case msg := <-messages:
		consumer.handle(ctx, msg)
	case <-ctx.Done():
		t.Fatal("no message arrived on the bus")
	}

	require.Len(t, runRepo.runs, 1)
	run := runRepo.runs[0]
	require.Equal(t, []string{"meditations.pdf"}, run.ProcessedFiles)
	require.Equal(t, []string{"letters.pdf"}, run.SkippedFiles)
	require.Equal(t, 17, run.TotalChunks)
}

func TestConsumerDropsMalformedPayload(t *testing.T) {
	runRepo := &fakeRunRepository{}
	consumer := NewConsumerService(nil, "INGESTION_COMPLETED", runRepo, nopLogger{})

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	consumer.handle(context.Background(), msg)

	require.Empty(t, runRepo.runs)
}
