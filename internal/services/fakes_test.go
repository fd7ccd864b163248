package services

import (
	"context"
	"sort"
	"time"

	"eventmanager/internal/domain"
)

// fakeStore is an in-memory stand-in for Postgres shared by the fake repositories. Entities are copied on
// the way in and out so callers never alias stored state.
type fakeStore struct {
	events       map[int64]domain.Event
	participants map[int64]domain.Participant
	speakers     map[int64]domain.Speaker
	vendors      map[int64]domain.Vendor
	feedbacks    map[int64]domain.Feedback
	nextID       int64
	err          error // if set, every write returns this error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:       make(map[int64]domain.Event),
		participants: make(map[int64]domain.Participant),
		speakers:     make(map[int64]domain.Speaker),
		vendors:      make(map[int64]domain.Vendor),
		feedbacks:    make(map[int64]domain.Feedback),
		nextID:       1,
	}
}

func (s *fakeStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *fakeStore) requireEvent(id int64) error {
	if _, ok := s.events[id]; !ok {
		return domain.NewNotFoundError("event")
	}
	return nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type fakeEventRepo struct{ s *fakeStore }

func (f *fakeEventRepo) Add(ctx context.Context, e *domain.Event) error {
	if f.s.err != nil {
		return f.s.err
	}
	if e.ID == 0 {
		e.ID = f.s.id()
	} else if _, ok := f.s.events[e.ID]; !ok {
		return domain.NewNotFoundError("event")
	}
	cp := *e
	cp.Participants, cp.Speakers, cp.Vendors, cp.Feedbacks = nil, nil, nil, nil
	f.s.events[e.ID] = cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	stored, ok := f.s.events[id]
	if !ok {
		return nil, domain.NewNotFoundError("event")
	}
	e := stored
	for _, k := range sortedKeys(f.s.participants) {
		if p := f.s.participants[k]; p.EventID == id {
			e.Participants = append(e.Participants, &p)
		}
	}
	for _, k := range sortedKeys(f.s.speakers) {
		if sp := f.s.speakers[k]; sp.EventID == id {
			e.Speakers = append(e.Speakers, &sp)
		}
	}
	for _, k := range sortedKeys(f.s.vendors) {
		if v := f.s.vendors[k]; v.EventID == id {
			e.Vendors = append(e.Vendors, &v)
		}
	}
	for _, k := range sortedKeys(f.s.feedbacks) {
		if fb := f.s.feedbacks[k]; fb.EventID == id {
			e.Feedbacks = append(e.Feedbacks, &fb)
		}
	}
	return &e, nil
}

func (f *fakeEventRepo) ListAll(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(f.s.events))
	for _, k := range sortedKeys(f.s.events) {
		e := f.s.events[k]
		out = append(out, &e)
	}
	return out, nil
}

// Remove mirrors ON DELETE CASCADE.
func (f *fakeEventRepo) Remove(ctx context.Context, e *domain.Event) error {
	if f.s.err != nil {
		return f.s.err
	}
	if _, ok := f.s.events[e.ID]; !ok {
		return domain.NewNotFoundError("event")
	}
	delete(f.s.events, e.ID)
	for k, p := range f.s.participants {
		if p.EventID == e.ID {
			delete(f.s.participants, k)
		}
	}
	for k, sp := range f.s.speakers {
		if sp.EventID == e.ID {
			delete(f.s.speakers, k)
		}
	}
	for k, v := range f.s.vendors {
		if v.EventID == e.ID {
			delete(f.s.vendors, k)
		}
	}
	for k, fb := range f.s.feedbacks {
		if fb.EventID == e.ID {
			delete(f.s.feedbacks, k)
		}
	}
	return nil
}

type fakeParticipantRepo struct{ s *fakeStore }

func (f *fakeParticipantRepo) Add(ctx context.Context, p *domain.Participant) error {
	if f.s.err != nil {
		return f.s.err
	}
	if err := f.s.requireEvent(p.EventID); err != nil {
		return err
	}
	if p.ID == 0 {
		p.ID = f.s.id()
	} else if _, ok := f.s.participants[p.ID]; !ok {
		return domain.NewNotFoundError("participant")
	}
	f.s.participants[p.ID] = *p
	return nil
}

func (f *fakeParticipantRepo) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	p, ok := f.s.participants[id]
	if !ok {
		return nil, domain.NewNotFoundError("participant")
	}
	return &p, nil
}

func (f *fakeParticipantRepo) ListAll(ctx context.Context) ([]*domain.Participant, error) {
	out := make([]*domain.Participant, 0, len(f.s.participants))
	for _, k := range sortedKeys(f.s.participants) {
		p := f.s.participants[k]
		out = append(out, &p)
	}
	return out, nil
}

func (f *fakeParticipantRepo) Remove(ctx context.Context, p *domain.Participant) error {
	if _, ok := f.s.participants[p.ID]; !ok {
		return domain.NewNotFoundError("participant")
	}
	delete(f.s.participants, p.ID)
	return nil
}

type fakeSpeakerRepo struct{ s *fakeStore }

func (f *fakeSpeakerRepo) Add(ctx context.Context, sp *domain.Speaker) error {
	if f.s.err != nil {
		return f.s.err
	}
	if err := f.s.requireEvent(sp.EventID); err != nil {
		return err
	}
	if sp.ID == 0 {
		sp.ID = f.s.id()
	} else if _, ok := f.s.speakers[sp.ID]; !ok {
		return domain.NewNotFoundError("speaker")
	}
	f.s.speakers[sp.ID] = *sp
	return nil
}

func (f *fakeSpeakerRepo) GetByID(ctx context.Context, id int64) (*domain.Speaker, error) {
	sp, ok := f.s.speakers[id]
	if !ok {
		return nil, domain.NewNotFoundError("speaker")
	}
	return &sp, nil
}

func (f *fakeSpeakerRepo) ListAll(ctx context.Context) ([]*domain.Speaker, error) {
	out := make([]*domain.Speaker, 0, len(f.s.speakers))
	for _, k := range sortedKeys(f.s.speakers) {
		sp := f.s.speakers[k]
		out = append(out, &sp)
	}
	return out, nil
}

func (f *fakeSpeakerRepo) Remove(ctx context.Context, sp *domain.Speaker) error {
	if _, ok := f.s.speakers[sp.ID]; !ok {
		return domain.NewNotFoundError("speaker")
	}
	delete(f.s.speakers, sp.ID)
	return nil
}

type fakeVendorRepo struct{ s *fakeStore }

func (f *fakeVendorRepo) Add(ctx context.Context, v *domain.Vendor) error {
	if f.s.err != nil {
		return f.s.err
	}
	if err := f.s.requireEvent(v.EventID); err != nil {
		return err
	}
	if v.ID == 0 {
		v.ID = f.s.id()
	} else if _, ok := f.s.vendors[v.ID]; !ok {
		return domain.NewNotFoundError("vendor")
	}
	f.s.vendors[v.ID] = *v
	return nil
}

func (f *fakeVendorRepo) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	v, ok := f.s.vendors[id]
	if !ok {
		return nil, domain.NewNotFoundError("vendor")
	}
	return &v, nil
}

func (f *fakeVendorRepo) ListAll(ctx context.Context) ([]*domain.Vendor, error) {
	out := make([]*domain.Vendor, 0, len(f.s.vendors))
	for _, k := range sortedKeys(f.s.vendors) {
		v := f.s.vendors[k]
		out = append(out, &v)
	}
	return out, nil
}

func (f *fakeVendorRepo) Remove(ctx context.Context, v *domain.Vendor) error {
	if _, ok := f.s.vendors[v.ID]; !ok {
		return domain.NewNotFoundError("vendor")
	}
	delete(f.s.vendors, v.ID)
	return nil
}

type fakeFeedbackRepo struct{ s *fakeStore }

func (f *fakeFeedbackRepo) Add(ctx context.Context, fb *domain.Feedback) error {
	if f.s.err != nil {
		return f.s.err
	}
	if err := f.s.requireEvent(fb.EventID); err != nil {
		return err
	}
	if fb.ID == 0 {
		fb.ID = f.s.id()
	} else if _, ok := f.s.feedbacks[fb.ID]; !ok {
		return domain.NewNotFoundError("feedback")
	}
	f.s.feedbacks[fb.ID] = *fb
	return nil
}

func (f *fakeFeedbackRepo) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	fb, ok := f.s.feedbacks[id]
	if !ok {
		return nil, domain.NewNotFoundError("feedback")
	}
	return &fb, nil
}

func (f *fakeFeedbackRepo) ListAll(ctx context.Context) ([]*domain.Feedback, error) {
	out := make([]*domain.Feedback, 0, len(f.s.feedbacks))
	for _, k := range sortedKeys(f.s.feedbacks) {
		fb := f.s.feedbacks[k]
		out = append(out, &fb)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) Remove(ctx context.Context, fb *domain.Feedback) error {
	if _, ok := f.s.feedbacks[fb.ID]; !ok {
		return domain.NewNotFoundError("feedback")
	}
	delete(f.s.feedbacks, fb.ID)
	return nil
}

type notification struct {
	topic   domain.Topic
	payload any
}

// fakeNotifier records every notification. err, when set, is returned from Notify.
type fakeNotifier struct {
	sent []notification
	err  error
}

func (n *fakeNotifier) Notify(ctx context.Context, topic domain.Topic, payload any) error {
	n.sent = append(n.sent, notification{topic: topic, payload: payload})
	return n.err
}

func (n *fakeNotifier) topics() []domain.Topic {
	out := make([]domain.Topic, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.topic)
	}
	return out
}

const testTimeout = 5 * time.Second

type testServices struct {
	store        *fakeStore
	notifier     *fakeNotifier
	events       domain.EventService
	participants domain.ParticipantService
	speakers     domain.SpeakerService
	vendors      domain.VendorService
	feedback     domain.FeedbackService
}

func newTestServices() *testServices {
	store := newFakeStore()
	n := &fakeNotifier{}
	eventRepo := &fakeEventRepo{s: store}
	return &testServices{
		store:        store,
		notifier:     n,
		events:       NewEventService(eventRepo, n, testTimeout),
		participants: NewParticipantService(&fakeParticipantRepo{s: store}, eventRepo, n, testTimeout),
		speakers:     NewSpeakerService(&fakeSpeakerRepo{s: store}, eventRepo, n, testTimeout),
		vendors:      NewVendorService(&fakeVendorRepo{s: store}, eventRepo, n, testTimeout),
		feedback:     NewFeedbackService(&fakeFeedbackRepo{s: store}, eventRepo, n, testTimeout),
	}
}
