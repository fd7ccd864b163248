package domain

import (
	"context"
	"strings"
)

// Participant is an attendee registered for an event.
type Participant struct {
	ID      int64
	EventID int64

	name string
}

func (p *Participant) Name() string { return p.name }

// SetName rejects empty and whitespace-only names.
func (p *Participant) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "participant name must not be empty")
	}
	p.name = name
	return nil
}

// ParticipantRepository persists participants. Add on insert verifies the parent event in the same transaction.
type ParticipantRepository interface {
	Add(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, id int64) (*Participant, error)
	ListAll(ctx context.Context) ([]*Participant, error)
	Remove(ctx context.Context, p *Participant) error
}

// ParticipantUpdate carries a partial update. Nil fields are left unchanged.
type ParticipantUpdate struct {
	Name *string
}

type ParticipantService interface {
	Create(ctx context.Context, eventID int64, name string) (*ParticipantRecord, error)
	Get(ctx context.Context, id int64) (*ParticipantRecord, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*ParticipantRecord, error)
	Update(ctx context.Context, id int64, upd ParticipantUpdate) (*ParticipantRecord, error)
	Delete(ctx context.Context, id int64) error
}
