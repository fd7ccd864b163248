package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventmanager/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func scanSpeaker(s rowScanner) (*domain.Speaker, error) {
	var (
		id, eventID       int64
		name, description string
	)
	if err := s.Scan(&id, &eventID, &name, &description); err != nil {
		return nil, err
	}
	sp, err := domain.NewSpeaker(eventID, name, description)
	if err != nil {
		return nil, fmt.Errorf("load speaker %d: %w", id, err)
	}
	sp.ID = id
	return sp, nil
}

func (r *speakerRepository) Add(ctx context.Context, s *domain.Speaker) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if s.ID == 0 {
			if err := lockEvent(ctx, tx, s.EventID); err != nil {
				return err
			}
			query := `INSERT INTO speakers (event_id, name, description) VALUES ($1, $2, $3) RETURNING id`
			if err := tx.QueryRowContext(ctx, query, s.EventID, s.Name(), s.Description).Scan(&s.ID); err != nil {
				return mapPQError(err)
			}
			return nil
		}
		return execOne(ctx, tx, "speaker",
			`UPDATE speakers SET event_id = $1, name = $2, description = $3 WHERE id = $4`,
			s.EventID, s.Name(), s.Description, s.ID)
	})
}

func (r *speakerRepository) GetByID(ctx context.Context, id int64) (*domain.Speaker, error) {
	var s *domain.Speaker
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		s, err = scanSpeaker(tx.QueryRowContext(ctx, `SELECT id, event_id, name, description FROM speakers WHERE id = $1`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("speaker")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *speakerRepository) ListAll(ctx context.Context) ([]*domain.Speaker, error) {
	var out []*domain.Speaker
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		out, err = queryAll(ctx, tx, scanSpeaker, `SELECT id, event_id, name, description FROM speakers ORDER BY id`)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *speakerRepository) Remove(ctx context.Context, s *domain.Speaker) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		return execOne(ctx, tx, "speaker", `DELETE FROM speakers WHERE id = $1`, s.ID)
	})
}
