package services

import (
	"context"
	"fmt"
	"time"

	"eventmanager/internal/domain"
)

type speakerService struct {
	speakerRepo    domain.SpeakerRepository
	eventRepo      domain.EventRepository
	notifier       domain.Notifier
	contextTimeout time.Duration
}

func NewSpeakerService(speakerRepo domain.SpeakerRepository, eventRepo domain.EventRepository, notifier domain.Notifier, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		speakerRepo:    speakerRepo,
		eventRepo:      eventRepo,
		notifier:       notifier,
		contextTimeout: timeout,
	}
}

func (s *speakerService) Create(ctx context.Context, eventID int64, name, description string) (*domain.SpeakerRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	sp, err := domain.NewSpeaker(eventID, name, description)
	if err != nil {
		return nil, err
	}
	if err := s.speakerRepo.Add(ctx, sp); err != nil {
		return nil, fmt.Errorf("create speaker: %w", err)
	}
	rec := domain.NewSpeakerRecord(sp, event.Name())
	if err := s.notifier.Notify(ctx, domain.TopicSpeakerRegistered, rec); err != nil {
		return nil, fmt.Errorf("notify %s: %w", domain.TopicSpeakerRegistered, err)
	}
	return rec, nil
}

func (s *speakerService) Get(ctx context.Context, id int64) (*domain.SpeakerRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sp, err := s.speakerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	return s.record(ctx, sp)
}

func (s *speakerService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.SpeakerRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	out := make([]*domain.SpeakerRecord, 0, len(event.Speakers))
	for _, sp := range event.Speakers {
		out = append(out, domain.NewSpeakerRecord(sp, event.Name()))
	}
	return out, nil
}

func (s *speakerService) Update(ctx context.Context, id int64, upd domain.SpeakerUpdate) (*domain.SpeakerRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sp, err := s.speakerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	if upd.Name == nil && upd.Description == nil {
		return s.record(ctx, sp)
	}
	if upd.Name != nil {
		if err := sp.SetName(*upd.Name); err != nil {
			return nil, err
		}
	}
	if upd.Description != nil {
		sp.Description = *upd.Description
	}
	if err := s.speakerRepo.Add(ctx, sp); err != nil {
		return nil, fmt.Errorf("update speaker: %w", err)
	}
	return s.record(ctx, sp)
}

func (s *speakerService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sp, err := s.speakerRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get speaker: %w", err)
	}
	if err := s.speakerRepo.Remove(ctx, sp); err != nil {
		return fmt.Errorf("delete speaker: %w", err)
	}
	return nil
}

// record shapes sp with its event's name.
func (s *speakerService) record(ctx context.Context, sp *domain.Speaker) (*domain.SpeakerRecord, error) {
	name, err := eventName(ctx, s.eventRepo, sp.EventID)
	if err != nil {
		return nil, err
	}
	return domain.NewSpeakerRecord(sp, name), nil
}
