package service

import (
	"encoding/json"
	"time"

	"ayat-reflection-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService pushes analytics events onto the in-process bus so
// the HTTP handler never waits on storage.
type IPublisherService interface {
	PublishAnalyticsEvent(eventType string, properties map[string]interface{}) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) PublishAnalyticsEvent(eventType string, properties map[string]interface{}) error {
	payload, err := json.Marshal(dto.PublishAnalyticsMessage{
		EventType:  eventType,
		Properties: properties,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return ps.pubSub.Publish(ps.topicName, msg)
}
