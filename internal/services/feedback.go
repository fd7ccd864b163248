package services

import (
	"context"
	"fmt"
	"time"

	"eventmanager/internal/domain"
)

type feedbackService struct {
	feedbackRepo   domain.FeedbackRepository
	eventRepo      domain.EventRepository
	notifier       domain.Notifier
	contextTimeout time.Duration
}

func NewFeedbackService(feedbackRepo domain.FeedbackRepository, eventRepo domain.EventRepository, notifier domain.Notifier, timeout time.Duration) domain.FeedbackService {
	return &feedbackService{
		feedbackRepo:   feedbackRepo,
		eventRepo:      eventRepo,
		notifier:       notifier,
		contextTimeout: timeout,
	}
}

func (s *feedbackService) Create(ctx context.Context, eventID int64, content string) (*domain.FeedbackRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	f, err := domain.NewFeedback(eventID, content)
	if err != nil {
		return nil, err
	}
	if err := s.feedbackRepo.Add(ctx, f); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	rec := domain.NewFeedbackRecord(f, event.Name())
	if err := s.notifier.Notify(ctx, domain.TopicFeedbackAdded, rec); err != nil {
		return nil, fmt.Errorf("notify %s: %w", domain.TopicFeedbackAdded, err)
	}
	return rec, nil
}

func (s *feedbackService) Get(ctx context.Context, id int64) (*domain.FeedbackRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	f, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return s.record(ctx, f)
}

func (s *feedbackService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.FeedbackRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	out := make([]*domain.FeedbackRecord, 0, len(event.Feedbacks))
	for _, f := range event.Feedbacks {
		out = append(out, domain.NewFeedbackRecord(f, event.Name()))
	}
	return out, nil
}

func (s *feedbackService) Update(ctx context.Context, id int64, upd domain.FeedbackUpdate) (*domain.FeedbackRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	f, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	if upd.Content == nil {
		return s.record(ctx, f)
	}
	if err := f.SetContent(*upd.Content); err != nil {
		return nil, err
	}
	if err := s.feedbackRepo.Add(ctx, f); err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	return s.record(ctx, f)
}

func (s *feedbackService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	f, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get feedback: %w", err)
	}
	if err := s.feedbackRepo.Remove(ctx, f); err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}

// record shapes f with its event's name.
func (s *feedbackService) record(ctx context.Context, f *domain.Feedback) (*domain.FeedbackRecord, error) {
	name, err := eventName(ctx, s.eventRepo, f.EventID)
	if err != nil {
		return nil, err
	}
	return domain.NewFeedbackRecord(f, name), nil
}
