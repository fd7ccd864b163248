package domain

import (
	"context"
	"strings"
)

// Speaker presents at an event. Description is free text and may be empty.
type Speaker struct {
	ID          int64
	EventID     int64
	Description string

	name string
}

func (s *Speaker) Name() string { return s.name }

// SetName rejects empty and whitespace-only names.
func (s *Speaker) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "speaker name must not be empty")
	}
	s.name = name
	return nil
}

type SpeakerRepository interface {
	Add(ctx context.Context, s *Speaker) error
	GetByID(ctx context.Context, id int64) (*Speaker, error)
	ListAll(ctx context.Context) ([]*Speaker, error)
	Remove(ctx context.Context, s *Speaker) error
}

// SpeakerUpdate carries a partial update. Nil fields are left unchanged.
type SpeakerUpdate struct {
	Name        *string
	Description *string
}

type SpeakerService interface {
	Create(ctx context.Context, eventID int64, name, description string) (*SpeakerRecord, error)
	Get(ctx context.Context, id int64) (*SpeakerRecord, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*SpeakerRecord, error)
	Update(ctx context.Context, id int64, upd SpeakerUpdate) (*SpeakerRecord, error)
	Delete(ctx context.Context, id int64) error
}
