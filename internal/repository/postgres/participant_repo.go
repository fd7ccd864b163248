package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventmanager/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

// NewParticipantRepository returns a domain.ParticipantRepository implemented with Postgres.
func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

func scanParticipant(s rowScanner) (*domain.Participant, error) {
	var (
		id, eventID int64
		name        string
	)
	if err := s.Scan(&id, &eventID, &name); err != nil {
		return nil, err
	}
	p, err := domain.NewParticipant(eventID, name)
	if err != nil {
		return nil, fmt.Errorf("load participant %d: %w", id, err)
	}
	p.ID = id
	return p, nil
}

func (r *participantRepository) Add(ctx context.Context, p *domain.Participant) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if p.ID == 0 {
			if err := lockEvent(ctx, tx, p.EventID); err != nil {
				return err
			}
			query := `INSERT INTO participants (event_id, name) VALUES ($1, $2) RETURNING id`
			if err := tx.QueryRowContext(ctx, query, p.EventID, p.Name()).Scan(&p.ID); err != nil {
				return mapPQError(err)
			}
			return nil
		}
		return execOne(ctx, tx, "participant",
			`UPDATE participants SET event_id = $1, name = $2 WHERE id = $3`, p.EventID, p.Name(), p.ID)
	})
}

func (r *participantRepository) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	var p *domain.Participant
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		p, err = scanParticipant(tx.QueryRowContext(ctx, `SELECT id, event_id, name FROM participants WHERE id = $1`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("participant")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) ListAll(ctx context.Context) ([]*domain.Participant, error) {
	var out []*domain.Participant
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		out, err = queryAll(ctx, tx, scanParticipant, `SELECT id, event_id, name FROM participants ORDER BY id`)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *participantRepository) Remove(ctx context.Context, p *domain.Participant) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		return execOne(ctx, tx, "participant", `DELETE FROM participants WHERE id = $1`, p.ID)
	})
}
