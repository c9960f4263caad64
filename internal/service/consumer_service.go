package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ayat-reflection-be/internal/constant"
	"ayat-reflection-be/internal/dto"
	"ayat-reflection-be/pkg/versestore"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the analytics topic into the sink. Failures
// are logged and dropped: analytics never blocks or retries forever.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sink      versestore.AnalyticsSink
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sink versestore.AnalyticsSink,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		sink:      sink,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAnalyticsMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal analytics message: %v", err)
		msg.Ack() // invalid payloads are dropped, never retried
		return
	}

	if !constant.IsAllowedEventType(payload.EventType) {
		log.Printf("[WARN] Dropping analytics event with unknown type: %s", payload.EventType)
		msg.Ack()
		return
	}

	occurredAt, err := time.Parse(time.RFC3339, payload.OccurredAt)
	if err != nil {
		occurredAt = time.Now().UTC()
	}

	event := versestore.AnalyticsEvent{
		ID:         uuid.New(),
		EventType:  payload.EventType,
		Properties: payload.Properties,
		OccurredAt: occurredAt,
	}

	if err := cs.sink.InsertEvent(ctx, event); err != nil {
		log.Printf("[ERROR] Failed to persist analytics event %s: %v", event.EventType, err)
	}
	msg.Ack()
}
