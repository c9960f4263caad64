package constant

// Allowlisted analytics event types. Anything else is dropped at the
// door so clients cannot write arbitrary rows.
const (
	EventSearchStarted   = "search_started"
	EventSearchCompleted = "search_completed"
	EventMoodFeedback    = "mood_feedback"
	EventVerseSaved      = "verse_saved"
	EventVerseUnsaved    = "verse_unsaved"
	EventVerseShared     = "verse_shared"
	EventVersePlayed     = "verse_played"
)

var allowedEventTypes = map[string]bool{
	EventSearchStarted:   true,
	EventSearchCompleted: true,
	EventMoodFeedback:    true,
	EventVerseSaved:      true,
	EventVerseUnsaved:    true,
	EventVerseShared:     true,
	EventVersePlayed:     true,
}

func IsAllowedEventType(eventType string) bool {
	return allowedEventTypes[eventType]
}
