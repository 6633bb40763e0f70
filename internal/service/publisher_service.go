package service

import (
	"encoding/json"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/logger"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// PublisherService pushes domain events onto the in-process bus so
// side effects (run history, future notifications) stay out of the
// ingestion path.
type PublisherService struct {
	publisher message.Publisher
	topic     string
	log       logger.ILogger
}

func NewPublisherService(publisher message.Publisher, topic string, log logger.ILogger) *PublisherService {
	return &PublisherService{
		publisher: publisher,
		topic:     topic,
		log:       log,
	}
}

// Publish serializes the event into an envelope carrying its type,
// timestamp, and payload.
func (s *PublisherService) Publish(evt events.Event) error {
	envelope := map[string]interface{}{
		"event_type":  evt.EventType(),
		"occurred_at": evt.Timestamp(),
		"payload":     evt.Payload(),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.log.Error("PublisherService", "Failed to publish event", map[string]interface{}{
			"topic":      s.topic,
			"event_type": evt.EventType(),
			"error":      err.Error(),
		})
		return err
	}

	s.log.Info("PublisherService", "Event published", map[string]interface{}{
		"topic":      s.topic,
		"event_type": evt.EventType(),
	})
	return nil
}
