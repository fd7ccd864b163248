package domain

import "context"

// Topic names a notification published after a successful write.
type Topic string

const (
	TopicEventCreated          Topic = "event_created"
	TopicEventUpdated          Topic = "event_updated"
	TopicEventDeleted          Topic = "event_deleted"
	TopicBudgetChanged         Topic = "budget_changed"
	TopicParticipantRegistered Topic = "participant_registered"
	TopicSpeakerRegistered     Topic = "speaker_registered"
	TopicVendorRegistered      Topic = "vendor_registered"
	TopicFeedbackAdded         Topic = "feedback_added"
)

// AllTopics lists every topic in declaration order.
var AllTopics = []Topic{
	TopicEventCreated,
	TopicEventUpdated,
	TopicEventDeleted,
	TopicBudgetChanged,
	TopicParticipantRegistered,
	TopicSpeakerRegistered,
	TopicVendorRegistered,
	TopicFeedbackAdded,
}

// Notifier publishes a payload to the listeners of topic. Listeners run synchronously and the first error
// is returned.
//
// Payloads: *EventRecord for event topics, *BudgetChange for budget_changed, and the dependent's record for the
// registration topics.
type Notifier interface {
	Notify(ctx context.Context, topic Topic, payload any) error
}

// BudgetChange is the budget_changed payload.
type BudgetChange struct {
	EventID  int64
	Previous int64
	Current  int64
}
