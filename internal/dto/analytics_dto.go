package dto

type LogEventRequest struct {
	EventType  string                 `json:"event_type" validate:"required"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// PublishAnalyticsMessage is the event bus payload between the HTTP
// handler and the analytics consumer.
type PublishAnalyticsMessage struct {
	EventType  string                 `json:"event_type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	OccurredAt string                 `json:"occurred_at"`
}
