package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"eventmanager/internal/domain"
)

// LogListener writes one structured log line per notification.
func LogListener(logger *slog.Logger) Listener {
	return func(ctx context.Context, topic domain.Topic, payload any) error {
		attrs := []any{"topic", string(topic)}
		switch p := payload.(type) {
		case *domain.EventRecord:
			attrs = append(attrs, "event_id", p.ID, "name", p.Name)
		case *domain.BudgetChange:
			attrs = append(attrs, "event_id", p.EventID, "previous", p.Previous, "current", p.Current)
		case *domain.ParticipantRecord:
			attrs = append(attrs, "event_id", p.EventID, "participant_id", p.ID, "name", p.Name)
		case *domain.SpeakerRecord:
			attrs = append(attrs, "event_id", p.EventID, "speaker_id", p.ID, "name", p.Name)
		case *domain.VendorRecord:
			attrs = append(attrs, "event_id", p.EventID, "vendor_id", p.ID, "name", p.Name)
		case *domain.FeedbackRecord:
			attrs = append(attrs, "event_id", p.EventID, "feedback_id", p.ID)
		}
		logger.InfoContext(ctx, "notification", attrs...)
		return nil
	}
}

// EmailListener mails the organizer when an event is created or a participant registers. Other topics
// are ignored. An empty organizer address disables it.
//
// The write has already been committed when it runs, so a failed send is logged and not returned. An
// unexpected payload type is still returned.
func EmailListener(emails domain.EmailService, organizer string, logger *slog.Logger) Listener {
	return func(ctx context.Context, topic domain.Topic, payload any) error {
		if organizer == "" {
			return nil
		}
		var err error
		switch topic {
		case domain.TopicEventCreated:
			ev, ok := payload.(*domain.EventRecord)
			if !ok {
				return fmt.Errorf("email listener: unexpected %s payload %T", topic, payload)
			}
			err = emails.SendEventCreated(ctx, &domain.EventCreatedEmailData{
				To:        organizer,
				EventID:   ev.ID,
				EventName: ev.Name,
				Date:      ev.Date,
				Budget:    ev.Budget,
			})
		case domain.TopicParticipantRegistered:
			p, ok := payload.(*domain.ParticipantRecord)
			if !ok {
				return fmt.Errorf("email listener: unexpected %s payload %T", topic, payload)
			}
			err = emails.SendParticipantRegistered(ctx, &domain.ParticipantRegisteredEmailData{
				To:              organizer,
				EventID:         p.EventID,
				EventName:       p.EventName,
				ParticipantName: p.Name,
			})
		}
		if err != nil {
			logger.ErrorContext(ctx, "notification email failed", "topic", string(topic), "error", err)
		}
		return nil
	}
}

// MetricsListener increments counter with the topic label.
func MetricsListener(counter *prometheus.CounterVec) Listener {
	return func(ctx context.Context, topic domain.Topic, payload any) error {
		counter.WithLabelValues(string(topic)).Inc()
		return nil
	}
}
