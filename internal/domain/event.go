package domain

import (
	"context"
	"math"
	"strings"
)

// Event is the root aggregate. Participants, speakers, vendors and feedback are owned by it and
// are removed with it.
//
// Name, date and budget are only reachable through setters so every assignment is validated.
// The collections are populated by EventRepository.GetByID and are read-only snapshots.
type Event struct {
	ID int64

	name   string
	date   string
	budget int64

	Participants []*Participant
	Speakers     []*Speaker
	Vendors      []*Vendor
	Feedbacks    []*Feedback
}

func (e *Event) Name() string  { return e.name }
func (e *Event) Date() string  { return e.date }
func (e *Event) Budget() int64 { return e.budget }

// SetName rejects empty and whitespace-only names.
func (e *Event) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "event name must not be empty")
	}
	e.name = name
	return nil
}

// SetDate rejects empty dates. The format is checked at the request boundary.
func (e *Event) SetDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return NewValidationError("date", "event date must not be empty")
	}
	e.date = date
	return nil
}

// SetBudget rejects negative budgets. Budgets are minor currency units.
func (e *Event) SetBudget(budget int64) error {
	if budget < 0 {
		return NewValidationError("budget", "budget must not be negative")
	}
	e.budget = budget
	return nil
}

// AdjustBudget adds delta to the current budget. The budget is unchanged when the result would be negative
// or would not fit in an int64.
func (e *Event) AdjustBudget(delta int64) error {
	if delta > 0 && e.budget > math.MaxInt64-delta {
		return NewValidationError("budget", "budget adjustment is too large")
	}
	return e.SetBudget(e.budget + delta)
}

// EventRepository persists events. Each call is its own transaction.
type EventRepository interface {
	// Add inserts the event when ID is zero and updates it otherwise. The generated ID is set on insert.
	Add(ctx context.Context, event *Event) error
	// GetByID loads the event together with its four dependent collections.
	GetByID(ctx context.Context, id int64) (*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
	// Remove deletes the event; dependents are deleted by the store's cascade.
	Remove(ctx context.Context, event *Event) error
}

// EventUpdate carries a partial update. Nil fields are left unchanged.
type EventUpdate struct {
	Name   *string
	Date   *string
	Budget *int64
}

// EventService defines event lifecycle and budget operations.
//
// Writes publish a notification once the repository call has committed. A listener error is returned
// wrapped as "notify <topic>: ..." but the write stays persisted, so callers must not blindly retry.
type EventService interface {
	Create(ctx context.Context, name, date string, budget int64) (*EventRecord, error)
	Get(ctx context.Context, id int64) (*EventDetail, error)
	List(ctx context.Context) ([]*EventRecord, error)
	Update(ctx context.Context, id int64, upd EventUpdate) (*EventRecord, error)
	Delete(ctx context.Context, id int64) error
	// UpdateBudget adds a signed delta to the current budget.
	UpdateBudget(ctx context.Context, id int64, amount int64) (*EventRecord, error)
	// EditBudget replaces the budget with an absolute value.
	EditBudget(ctx context.Context, id int64, newBudget int64) (*EventRecord, error)
	GetBudget(ctx context.Context, id int64) (int64, error)
}
