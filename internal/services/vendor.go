package services

import (
	"context"
	"fmt"
	"time"

	"eventmanager/internal/domain"
)

type vendorService struct {
	vendorRepo     domain.VendorRepository
	eventRepo      domain.EventRepository
	notifier       domain.Notifier
	contextTimeout time.Duration
}

func NewVendorService(vendorRepo domain.VendorRepository, eventRepo domain.EventRepository, notifier domain.Notifier, timeout time.Duration) domain.VendorService {
	return &vendorService{
		vendorRepo:     vendorRepo,
		eventRepo:      eventRepo,
		notifier:       notifier,
		contextTimeout: timeout,
	}
}

func (s *vendorService) Create(ctx context.Context, eventID int64, name, services string) (*domain.VendorRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	v, err := domain.NewVendor(eventID, name, services)
	if err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Add(ctx, v); err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	rec := domain.NewVendorRecord(v, event.Name())
	if err := s.notifier.Notify(ctx, domain.TopicVendorRegistered, rec); err != nil {
		return nil, fmt.Errorf("notify %s: %w", domain.TopicVendorRegistered, err)
	}
	return rec, nil
}

func (s *vendorService) Get(ctx context.Context, id int64) (*domain.VendorRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return s.record(ctx, v)
}

func (s *vendorService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.VendorRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	out := make([]*domain.VendorRecord, 0, len(event.Vendors))
	for _, v := range event.Vendors {
		out = append(out, domain.NewVendorRecord(v, event.Name()))
	}
	return out, nil
}

func (s *vendorService) Update(ctx context.Context, id int64, upd domain.VendorUpdate) (*domain.VendorRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	if upd.Name == nil && upd.Services == nil {
		return s.record(ctx, v)
	}
	if upd.Name != nil {
		if err := v.SetName(*upd.Name); err != nil {
			return nil, err
		}
	}
	if upd.Services != nil {
		v.Services = *upd.Services
	}
	if err := s.vendorRepo.Add(ctx, v); err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	return s.record(ctx, v)
}

func (s *vendorService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get vendor: %w", err)
	}
	if err := s.vendorRepo.Remove(ctx, v); err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}

// record shapes v with its event's name.
func (s *vendorService) record(ctx context.Context, v *domain.Vendor) (*domain.VendorRecord, error) {
	name, err := eventName(ctx, s.eventRepo, v.EventID)
	if err != nil {
		return nil, err
	}
	return domain.NewVendorRecord(v, name), nil
}
