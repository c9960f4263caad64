package service

import (
	"ayat-reflection-be/internal/constant"
	"ayat-reflection-be/internal/dto"
)

// IAnalyticsService accepts behaviour events from clients. Only
// allowlisted event types with primitive metadata pass through.
type IAnalyticsService interface {
	LogEvent(request *dto.LogEventRequest) error
}

type analyticsService struct {
	publisher IPublisherService
}

func NewAnalyticsService(publisher IPublisherService) IAnalyticsService {
	return &analyticsService{publisher: publisher}
}

func (s *analyticsService) LogEvent(request *dto.LogEventRequest) error {
	if !constant.IsAllowedEventType(request.EventType) {
		return &dto.ValidationError{Message: constant.MsgValidationInvalid}
	}

	return s.publisher.PublishAnalyticsEvent(request.EventType, sanitizeProperties(request.Properties))
}

// sanitizeProperties keeps primitive values only, so nested structures
// and potential content payloads never reach storage.
func sanitizeProperties(properties map[string]interface{}) map[string]interface{} {
	if len(properties) == 0 {
		return nil
	}

	safe := make(map[string]interface{}, len(properties))
	for k, v := range properties {
		switch v.(type) {
		case string, float64, int, int64, bool:
			safe[k] = v
		}
	}
	if len(safe) == 0 {
		return nil
	}
	return safe
}
