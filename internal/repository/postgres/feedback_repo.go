package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventmanager/internal/domain"
)

type feedbackRepository struct {
	DB *sql.DB
}

func NewFeedbackRepository(db *sql.DB) domain.FeedbackRepository {
	return &feedbackRepository{DB: db}
}

func scanFeedback(s rowScanner) (*domain.Feedback, error) {
	var (
		id, eventID int64
		content     string
	)
	if err := s.Scan(&id, &eventID, &content); err != nil {
		return nil, err
	}
	f, err := domain.NewFeedback(eventID, content)
	if err != nil {
		return nil, fmt.Errorf("load feedback %d: %w", id, err)
	}
	f.ID = id
	return f, nil
}

func (r *feedbackRepository) Add(ctx context.Context, f *domain.Feedback) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if f.ID == 0 {
			if err := lockEvent(ctx, tx, f.EventID); err != nil {
				return err
			}
			query := `INSERT INTO feedbacks (event_id, content) VALUES ($1, $2) RETURNING id`
			if err := tx.QueryRowContext(ctx, query, f.EventID, f.Content()).Scan(&f.ID); err != nil {
				return mapPQError(err)
			}
			return nil
		}
		return execOne(ctx, tx, "feedback",
			`UPDATE feedbacks SET event_id = $1, content = $2 WHERE id = $3`, f.EventID, f.Content(), f.ID)
	})
}

func (r *feedbackRepository) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	var f *domain.Feedback
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		f, err = scanFeedback(tx.QueryRowContext(ctx, `SELECT id, event_id, content FROM feedbacks WHERE id = $1`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("feedback")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *feedbackRepository) ListAll(ctx context.Context) ([]*domain.Feedback, error) {
	var out []*domain.Feedback
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		out, err = queryAll(ctx, tx, scanFeedback, `SELECT id, event_id, content FROM feedbacks ORDER BY id`)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *feedbackRepository) Remove(ctx context.Context, f *domain.Feedback) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		return execOne(ctx, tx, "feedback", `DELETE FROM feedbacks WHERE id = $1`, f.ID)
	})
}
