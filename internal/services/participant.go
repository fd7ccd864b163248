package services

import (
	"context"
	"fmt"
	"time"

	"eventmanager/internal/domain"
)

type participantService struct {
	participantRepo domain.ParticipantRepository
	eventRepo       domain.EventRepository
	notifier        domain.Notifier
	contextTimeout  time.Duration
}

func NewParticipantService(participantRepo domain.ParticipantRepository, eventRepo domain.EventRepository, notifier domain.Notifier, timeout time.Duration) domain.ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		notifier:        notifier,
		contextTimeout:  timeout,
	}
}

// Create registers a participant. The event lookup gives a fast not-found and the event name; the
// repository re-checks the event inside the insert transaction.
func (s *participantService) Create(ctx context.Context, eventID int64, name string) (*domain.ParticipantRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	p, err := domain.NewParticipant(eventID, name)
	if err != nil {
		return nil, err
	}
	if err := s.participantRepo.Add(ctx, p); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}
	rec := domain.NewParticipantRecord(p, event.Name())
	if err := s.notifier.Notify(ctx, domain.TopicParticipantRegistered, rec); err != nil {
		return nil, fmt.Errorf("notify %s: %w", domain.TopicParticipantRegistered, err)
	}
	return rec, nil
}

func (s *participantService) Get(ctx context.Context, id int64) (*domain.ParticipantRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return s.record(ctx, p)
}

func (s *participantService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.ParticipantRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	out := make([]*domain.ParticipantRecord, 0, len(event.Participants))
	for _, p := range event.Participants {
		out = append(out, domain.NewParticipantRecord(p, event.Name()))
	}
	return out, nil
}

func (s *participantService) Update(ctx context.Context, id int64, upd domain.ParticipantUpdate) (*domain.ParticipantRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	if upd.Name == nil {
		return s.record(ctx, p)
	}
	if err := p.SetName(*upd.Name); err != nil {
		return nil, err
	}
	if err := s.participantRepo.Add(ctx, p); err != nil {
		return nil, fmt.Errorf("update participant: %w", err)
	}
	return s.record(ctx, p)
}

func (s *participantService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get participant: %w", err)
	}
	if err := s.participantRepo.Remove(ctx, p); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}

// record shapes p with its event's name.
func (s *participantService) record(ctx context.Context, p *domain.Participant) (*domain.ParticipantRecord, error) {
	name, err := eventName(ctx, s.eventRepo, p.EventID)
	if err != nil {
		return nil, err
	}
	return domain.NewParticipantRecord(p, name), nil
}
