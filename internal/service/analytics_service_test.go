package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayat-reflection-be/internal/dto"
)

type capturePublisher struct {
	eventType  string
	properties map[string]interface{}
	calls      int
}

func (c *capturePublisher) PublishAnalyticsEvent(eventType string, properties map[string]interface{}) error {
	c.calls++
	c.eventType = eventType
	c.properties = properties
	return nil
}

func TestLogEvent_PublishesAllowedEvent(t *testing.T) {
	publisher := &capturePublisher{}
	s := NewAnalyticsService(publisher)

	err := s.LogEvent(&dto.LogEventRequest{
		EventType:  "verse_saved",
		Properties: map[string]interface{}{"verse_id": "94:5"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, publisher.calls)
	assert.Equal(t, "verse_saved", publisher.eventType)
	assert.Equal(t, "94:5", publisher.properties["verse_id"])
}

func TestLogEvent_RejectsUnknownEventType(t *testing.T) {
	publisher := &capturePublisher{}
	s := NewAnalyticsService(publisher)

	err := s.LogEvent(&dto.LogEventRequest{EventType: "drop_table"})

	var validationErr *dto.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Zero(t, publisher.calls)
}

func TestLogEvent_StripsNonPrimitiveProperties(t *testing.T) {
	publisher := &capturePublisher{}
	s := NewAnalyticsService(publisher)

	err := s.LogEvent(&dto.LogEventRequest{
		EventType: "search_completed",
		Properties: map[string]interface{}{
			"duration_ms": float64(1200),
			"ok":          true,
			"nested":      map[string]interface{}{"leak": "content"},
			"list":        []interface{}{1, 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"duration_ms": float64(1200), "ok": true}, publisher.properties)
}

func TestLogEvent_EmptyPropertiesBecomeNil(t *testing.T) {
	publisher := &capturePublisher{}
	s := NewAnalyticsService(publisher)

	require.NoError(t, s.LogEvent(&dto.LogEventRequest{EventType: "search_started"}))
	assert.Nil(t, publisher.properties)
}
