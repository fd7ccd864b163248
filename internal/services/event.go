package services

import (
	"context"
	"fmt"
	"time"

	"eventmanager/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	notifier       domain.Notifier
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, notifier domain.Notifier, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		notifier:       notifier,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, name, date string, budget int64) (*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := domain.NewEvent(name, date, budget)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Add(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	rec := domain.NewEventRecord(event)
	if err := s.notifier.Notify(ctx, domain.TopicEventCreated, rec); err != nil {
		return nil, fmt.Errorf("notify %s: %w", domain.TopicEventCreated, err)
	}
	return rec, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return domain.NewEventDetail(event), nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]*domain.EventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, domain.NewEventRecord(e))
	}
	return out, nil
}

// Update applies only the non-nil fields of upd. All setters run before anything is written, so a rejected
// field leaves the stored event untouched.
func (s *eventService) Update(ctx context.Context, id int64, upd domain.EventUpdate) (*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if upd.Name == nil && upd.Date == nil && upd.Budget == nil {
		return domain.NewEventRecord(event), nil
	}
	if upd.Name != nil {
		if err := event.SetName(*upd.Name); err != nil {
			return nil, err
		}
	}
	if upd.Date != nil {
		if err := event.SetDate(*upd.Date); err != nil {
			return nil, err
		}
	}
	if upd.Budget != nil {
		if err := event.SetBudget(*upd.Budget); err != nil {
			return nil, err
		}
	}
	if err := s.eventRepo.Add(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	rec := domain.NewEventRecord(event)
	if err := s.notifier.Notify(ctx, domain.TopicEventUpdated, rec); err != nil {
		return nil, fmt.Errorf("notify %s: %w", domain.TopicEventUpdated, err)
	}
	return rec, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.eventRepo.Remove(ctx, event); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if err := s.notifier.Notify(ctx, domain.TopicEventDeleted, domain.NewEventRecord(event)); err != nil {
		return fmt.Errorf("notify %s: %w", domain.TopicEventDeleted, err)
	}
	return nil
}

func (s *eventService) UpdateBudget(ctx context.Context, id int64, amount int64) (*domain.EventRecord, error) {
	return s.changeBudget(ctx, id, func(e *domain.Event) error { return e.AdjustBudget(amount) })
}

func (s *eventService) EditBudget(ctx context.Context, id int64, newBudget int64) (*domain.EventRecord, error) {
	return s.changeBudget(ctx, id, func(e *domain.Event) error { return e.SetBudget(newBudget) })
}

func (s *eventService) GetBudget(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get event: %w", err)
	}
	return event.Budget(), nil
}

// changeBudget loads the event, applies apply and persists. A rejected budget is never written.
func (s *eventService) changeBudget(ctx context.Context, id int64, apply func(*domain.Event) error) (*domain.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	previous := event.Budget()
	if err := apply(event); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Add(ctx, event); err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	change := &domain.BudgetChange{EventID: event.ID, Previous: previous, Current: event.Budget()}
	if err := s.notifier.Notify(ctx, domain.TopicBudgetChanged, change); err != nil {
		return nil, fmt.Errorf("notify %s: %w", domain.TopicBudgetChanged, err)
	}
	return domain.NewEventRecord(event), nil
}

// eventName loads the name of the event a dependent belongs to.
func eventName(ctx context.Context, eventRepo domain.EventRepository, eventID int64) (string, error) {
	event, err := eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return "", fmt.Errorf("get event: %w", err)
	}
	return event.Name(), nil
}
