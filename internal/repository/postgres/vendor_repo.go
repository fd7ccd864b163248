package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventmanager/internal/domain"
)

type vendorRepository struct {
	DB *sql.DB
}

func NewVendorRepository(db *sql.DB) domain.VendorRepository {
	return &vendorRepository{DB: db}
}

func scanVendor(s rowScanner) (*domain.Vendor, error) {
	var (
		id, eventID    int64
		name, services string
	)
	if err := s.Scan(&id, &eventID, &name, &services); err != nil {
		return nil, err
	}
	v, err := domain.NewVendor(eventID, name, services)
	if err != nil {
		return nil, fmt.Errorf("load vendor %d: %w", id, err)
	}
	v.ID = id
	return v, nil
}

func (r *vendorRepository) Add(ctx context.Context, v *domain.Vendor) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if v.ID == 0 {
			if err := lockEvent(ctx, tx, v.EventID); err != nil {
				return err
			}
			query := `INSERT INTO vendors (event_id, name, services) VALUES ($1, $2, $3) RETURNING id`
			if err := tx.QueryRowContext(ctx, query, v.EventID, v.Name(), v.Services).Scan(&v.ID); err != nil {
				return mapPQError(err)
			}
			return nil
		}
		return execOne(ctx, tx, "vendor",
			`UPDATE vendors SET event_id = $1, name = $2, services = $3 WHERE id = $4`,
			v.EventID, v.Name(), v.Services, v.ID)
	})
}

func (r *vendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	var v *domain.Vendor
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		v, err = scanVendor(tx.QueryRowContext(ctx, `SELECT id, event_id, name, services FROM vendors WHERE id = $1`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("vendor")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vendorRepository) ListAll(ctx context.Context) ([]*domain.Vendor, error) {
	var out []*domain.Vendor
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var err error
		out, err = queryAll(ctx, tx, scanVendor, `SELECT id, event_id, name, services FROM vendors ORDER BY id`)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *vendorRepository) Remove(ctx context.Context, v *domain.Vendor) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		return execOne(ctx, tx, "vendor", `DELETE FROM vendors WHERE id = $1`, v.ID)
	})
}
