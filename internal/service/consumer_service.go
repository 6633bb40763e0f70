package service

import (
	"context"
	"encoding/json"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/dto"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/entity"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/logger"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
)

// ConsumerService records completed ingestion passes as run history
// rows, consumed off the event bus.
type ConsumerService struct {
	subscriber    message.Subscriber
	topic         string
	runRepository contract.IngestionRunRepository
	log           logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topic string, runRepository contract.IngestionRunRepository, log logger.ILogger) *ConsumerService {
	return &ConsumerService{
		subscriber:    subscriber,
		topic:         topic,
		runRepository: runRepository,
		log:           log,
	}
}

// Start subscribes and processes messages until ctx is cancelled.
func (s *ConsumerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	s.log.Info("ConsumerService", "Listening for ingestion events", map[string]interface{}{
		"topic": s.topic,
	})

	for msg := range messages {
		s.handle(ctx, msg)
	}
	return nil
}

// ingestionEventEnvelope mirrors the wire shape PublisherService
// produces for ingestion events.
type ingestionEventEnvelope struct {
	EventType string                        `json:"event_type"`
	Payload   dto.IngestionCompletedMessage `json:"payload"`
}

func (s *ConsumerService) handle(ctx context.Context, msg *message.Message) {
	var envelope ingestionEventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		s.log.Error("ConsumerService", "Invalid ingestion event payload", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Malformed payloads will never succeed, drop them.
		msg.Ack()
		return
	}

	run := &entity.IngestionRun{
		ProcessedFiles: envelope.Payload.ProcessedFiles,
		SkippedFiles:   envelope.Payload.SkippedFiles,
		TotalChunks:    envelope.Payload.TotalChunks,
	}
	if err := s.runRepository.Create(ctx, run); err != nil {
		s.log.Error("ConsumerService", "Failed to persist ingestion run", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	s.log.Info("ConsumerService", "Ingestion run recorded", map[string]interface{}{
		"run_id":       run.Id.String(),
		"total_chunks": run.TotalChunks,
	})
	msg.Ack()
}
