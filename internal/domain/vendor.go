package domain

import (
	"context"
	"strings"
)

// Vendor supplies an event. Services describes what the vendor provides and may be empty.
type Vendor struct {
	ID       int64
	EventID  int64
	Services string

	name string
}

func (v *Vendor) Name() string { return v.name }

func (v *Vendor) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "vendor name must not be empty")
	}
	v.name = name
	return nil
}

type VendorRepository interface {
	Add(ctx context.Context, v *Vendor) error
	GetByID(ctx context.Context, id int64) (*Vendor, error)
	ListAll(ctx context.Context) ([]*Vendor, error)
	Remove(ctx context.Context, v *Vendor) error
}

type VendorUpdate struct {
	Name     *string
	Services *string
}

type VendorService interface {
	Create(ctx context.Context, eventID int64, name, services string) (*VendorRecord, error)
	Get(ctx context.Context, id int64) (*VendorRecord, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*VendorRecord, error)
	Update(ctx context.Context, id int64, upd VendorUpdate) (*VendorRecord, error)
	Delete(ctx context.Context, id int64) error
}
