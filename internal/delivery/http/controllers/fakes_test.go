package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"eventmanager/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err error

	record *domain.EventRecord
	detail *domain.EventDetail
	list   []*domain.EventRecord
	budget int64

	lastName      string
	lastDate      string
	lastBudget    int64
	lastID        int64
	lastUpdate    domain.EventUpdate
	lastAmount    int64
	lastNewBudget int64
}

func (f *fakeEventService) Create(_ context.Context, name, date string, budget int64) (*domain.EventRecord, error) {
	f.lastName, f.lastDate, f.lastBudget = name, date, budget
	if f.err != nil {
		return nil, f.err
	}
	return &domain.EventRecord{ID: 1, Name: name, Date: date, Budget: budget, DisplayName: "1: " + name}, nil
}

func (f *fakeEventService) Get(_ context.Context, id int64) (*domain.EventDetail, error) {
	f.lastID = id
	return f.detail, f.err
}

func (f *fakeEventService) List(_ context.Context) ([]*domain.EventRecord, error) {
	return f.list, f.err
}

func (f *fakeEventService) Update(_ context.Context, id int64, upd domain.EventUpdate) (*domain.EventRecord, error) {
	f.lastID, f.lastUpdate = id, upd
	return f.record, f.err
}

func (f *fakeEventService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.err
}

func (f *fakeEventService) UpdateBudget(_ context.Context, id int64, amount int64) (*domain.EventRecord, error) {
	f.lastID, f.lastAmount = id, amount
	return f.record, f.err
}

func (f *fakeEventService) EditBudget(_ context.Context, id int64, newBudget int64) (*domain.EventRecord, error) {
	f.lastID, f.lastNewBudget = id, newBudget
	return f.record, f.err
}

func (f *fakeEventService) GetBudget(_ context.Context, id int64) (int64, error) {
	f.lastID = id
	return f.budget, f.err
}

// fakeParticipantService implements domain.ParticipantService.
type fakeParticipantService struct {
	err        error
	list       []*domain.ParticipantRecord
	lastEvent  int64
	lastName   string
	lastID     int64
	lastUpdate domain.ParticipantUpdate
}

func (f *fakeParticipantService) Create(_ context.Context, eventID int64, name string) (*domain.ParticipantRecord, error) {
	f.lastEvent, f.lastName = eventID, name
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ParticipantRecord{ID: 10, EventID: eventID, Name: name, DisplayName: "10: " + name}, nil
}

func (f *fakeParticipantService) Get(_ context.Context, id int64) (*domain.ParticipantRecord, error) {
	f.lastID = id
	return nil, f.err
}

func (f *fakeParticipantService) ListByEvent(_ context.Context, eventID int64) ([]*domain.ParticipantRecord, error) {
	f.lastEvent = eventID
	return f.list, f.err
}

func (f *fakeParticipantService) Update(_ context.Context, id int64, upd domain.ParticipantUpdate) (*domain.ParticipantRecord, error) {
	f.lastID, f.lastUpdate = id, upd
	if f.err != nil {
		return nil, f.err
	}
	name := "unchanged"
	if upd.Name != nil {
		name = *upd.Name
	}
	return &domain.ParticipantRecord{ID: id, EventID: 1, Name: name}, nil
}

func (f *fakeParticipantService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// fakeSpeakerService implements domain.SpeakerService.
type fakeSpeakerService struct {
	err        error
	lastEvent  int64
	lastName   string
	lastDesc   string
	lastID     int64
	lastUpdate domain.SpeakerUpdate
}

func (f *fakeSpeakerService) Create(_ context.Context, eventID int64, name, description string) (*domain.SpeakerRecord, error) {
	f.lastEvent, f.lastName, f.lastDesc = eventID, name, description
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SpeakerRecord{ID: 20, EventID: eventID, Name: name, Description: description}, nil
}

func (f *fakeSpeakerService) Get(_ context.Context, id int64) (*domain.SpeakerRecord, error) {
	return nil, f.err
}

func (f *fakeSpeakerService) ListByEvent(_ context.Context, eventID int64) ([]*domain.SpeakerRecord, error) {
	f.lastEvent = eventID
	return nil, f.err
}

func (f *fakeSpeakerService) Update(_ context.Context, id int64, upd domain.SpeakerUpdate) (*domain.SpeakerRecord, error) {
	f.lastID, f.lastUpdate = id, upd
	return &domain.SpeakerRecord{ID: id}, f.err
}

func (f *fakeSpeakerService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// fakeVendorService implements domain.VendorService.
type fakeVendorService struct {
	err          error
	lastEvent    int64
	lastServices string
	lastID       int64
	lastUpdate   domain.VendorUpdate
}

func (f *fakeVendorService) Create(_ context.Context, eventID int64, name, services string) (*domain.VendorRecord, error) {
	f.lastEvent, f.lastServices = eventID, services
	if f.err != nil {
		return nil, f.err
	}
	return &domain.VendorRecord{ID: 30, EventID: eventID, Name: name, Services: services}, nil
}

func (f *fakeVendorService) Get(_ context.Context, id int64) (*domain.VendorRecord, error) {
	return nil, f.err
}

func (f *fakeVendorService) ListByEvent(_ context.Context, eventID int64) ([]*domain.VendorRecord, error) {
	f.lastEvent = eventID
	return []*domain.VendorRecord{{ID: 30, EventID: eventID, Name: "Catering", EventName: "Conf"}}, f.err
}

func (f *fakeVendorService) Update(_ context.Context, id int64, upd domain.VendorUpdate) (*domain.VendorRecord, error) {
	f.lastID, f.lastUpdate = id, upd
	return &domain.VendorRecord{ID: id}, f.err
}

func (f *fakeVendorService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// fakeFeedbackService implements domain.FeedbackService.
type fakeFeedbackService struct {
	err         error
	lastEvent   int64
	lastContent string
	lastID      int64
	lastUpdate  domain.FeedbackUpdate
}

func (f *fakeFeedbackService) Create(_ context.Context, eventID int64, content string) (*domain.FeedbackRecord, error) {
	f.lastEvent, f.lastContent = eventID, content
	if f.err != nil {
		return nil, f.err
	}
	return &domain.FeedbackRecord{ID: 40, EventID: eventID, Content: content, DisplayName: "Feedback 40"}, nil
}

func (f *fakeFeedbackService) Get(_ context.Context, id int64) (*domain.FeedbackRecord, error) {
	return nil, f.err
}

func (f *fakeFeedbackService) ListByEvent(_ context.Context, eventID int64) ([]*domain.FeedbackRecord, error) {
	f.lastEvent = eventID
	return nil, f.err
}

func (f *fakeFeedbackService) Update(_ context.Context, id int64, upd domain.FeedbackUpdate) (*domain.FeedbackRecord, error) {
	f.lastID, f.lastUpdate = id, upd
	return &domain.FeedbackRecord{ID: id}, f.err
}

func (f *fakeFeedbackService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// newRequest builds a request with an optional JSON body and path values.
func newRequest(method, target, body string, pathValues map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return req
}
