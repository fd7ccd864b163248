package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventmanager/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	var (
		id     int64
		name   string
		date   string
		budget int64
	)
	if err := s.Scan(&id, &name, &date, &budget); err != nil {
		return nil, err
	}
	e, err := domain.NewEvent(name, date, budget)
	if err != nil {
		return nil, fmt.Errorf("load event %d: %w", id, err)
	}
	e.ID = id
	return e, nil
}

func (r *eventRepository) Add(ctx context.Context, e *domain.Event) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if e.ID == 0 {
			query := `
				INSERT INTO events (name, date, budget)
				VALUES ($1, $2, $3)
				RETURNING id
			`
			if err := tx.QueryRowContext(ctx, query, e.Name(), e.Date(), e.Budget()).Scan(&e.ID); err != nil {
				return mapPQError(err)
			}
			return nil
		}
		query := `UPDATE events SET name = $1, date = $2, budget = $3 WHERE id = $4`
		return execOne(ctx, tx, "event", query, e.Name(), e.Date(), e.Budget(), e.ID)
	})
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var e *domain.Event
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		e, err = scanEvent(tx.QueryRowContext(ctx, `SELECT id, name, date, budget FROM events WHERE id = $1`, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewNotFoundError("event")
			}
			return err
		}
		if e.Participants, err = queryAll(ctx, tx, scanParticipant,
			`SELECT id, event_id, name FROM participants WHERE event_id = $1 ORDER BY id`, id); err != nil {
			return fmt.Errorf("load participants: %w", err)
		}
		if e.Speakers, err = queryAll(ctx, tx, scanSpeaker,
			`SELECT id, event_id, name, description FROM speakers WHERE event_id = $1 ORDER BY id`, id); err != nil {
			return fmt.Errorf("load speakers: %w", err)
		}
		if e.Vendors, err = queryAll(ctx, tx, scanVendor,
			`SELECT id, event_id, name, services FROM vendors WHERE event_id = $1 ORDER BY id`, id); err != nil {
			return fmt.Errorf("load vendors: %w", err)
		}
		if e.Feedbacks, err = queryAll(ctx, tx, scanFeedback,
			`SELECT id, event_id, content FROM feedbacks WHERE event_id = $1 ORDER BY id`, id); err != nil {
			return fmt.Errorf("load feedback: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		events, err = queryAll(ctx, tx, scanEvent, `SELECT id, name, date, budget FROM events ORDER BY id`)
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Remove deletes the event row. Dependents go with it through ON DELETE CASCADE in the same statement.
func (r *eventRepository) Remove(ctx context.Context, e *domain.Event) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		return execOne(ctx, tx, "event", `DELETE FROM events WHERE id = $1`, e.ID)
	})
}

// queryAll runs query and scans every row with scan. The result is never nil.
func queryAll[T any](ctx context.Context, tx *sql.Tx, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
