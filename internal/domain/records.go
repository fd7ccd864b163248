package domain

import "fmt"

// EventRecord is the flat presentation shape of an event.
// swagger:model EventRecord
type EventRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Budget      int64  `json:"budget"`
	DisplayName string `json:"display_name"`
}

// EventDetail is an event with its four dependent collections.
// swagger:model EventDetail
type EventDetail struct {
	EventRecord
	Participants []*ParticipantRecord `json:"participants"`
	Speakers     []*SpeakerRecord     `json:"speakers"`
	Vendors      []*VendorRecord      `json:"vendors"`
	Feedback     []*FeedbackRecord    `json:"feedback"`
}

// swagger:model ParticipantRecord
type ParticipantRecord struct {
	ID          int64  `json:"id"`
	EventID     int64  `json:"event_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	EventName   string `json:"event_name,omitempty"`
}

// swagger:model SpeakerRecord
type SpeakerRecord struct {
	ID          int64  `json:"id"`
	EventID     int64  `json:"event_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DisplayName string `json:"display_name"`
	EventName   string `json:"event_name,omitempty"`
}

// swagger:model VendorRecord
type VendorRecord struct {
	ID          int64  `json:"id"`
	EventID     int64  `json:"event_id"`
	Name        string `json:"name"`
	Services    string `json:"services"`
	DisplayName string `json:"display_name"`
	EventName   string `json:"event_name,omitempty"`
}

// swagger:model FeedbackRecord
type FeedbackRecord struct {
	ID          int64  `json:"id"`
	EventID     int64  `json:"event_id"`
	Content     string `json:"content"`
	DisplayName string `json:"display_name"`
	EventName   string `json:"event_name,omitempty"`
}

func displayName(id int64, name string) string {
	return fmt.Sprintf("%d: %s", id, name)
}

func NewEventRecord(e *Event) *EventRecord {
	return &EventRecord{
		ID:          e.ID,
		Name:        e.Name(),
		Date:        e.Date(),
		Budget:      e.Budget(),
		DisplayName: displayName(e.ID, e.Name()),
	}
}

// NewEventDetail shapes the aggregate. Collections are never nil so they encode as [].
func NewEventDetail(e *Event) *EventDetail {
	d := &EventDetail{
		EventRecord:  *NewEventRecord(e),
		Participants: make([]*ParticipantRecord, 0, len(e.Participants)),
		Speakers:     make([]*SpeakerRecord, 0, len(e.Speakers)),
		Vendors:      make([]*VendorRecord, 0, len(e.Vendors)),
		Feedback:     make([]*FeedbackRecord, 0, len(e.Feedbacks)),
	}
	for _, p := range e.Participants {
		d.Participants = append(d.Participants, NewParticipantRecord(p, ""))
	}
	for _, s := range e.Speakers {
		d.Speakers = append(d.Speakers, NewSpeakerRecord(s, ""))
	}
	for _, v := range e.Vendors {
		d.Vendors = append(d.Vendors, NewVendorRecord(v, ""))
	}
	for _, f := range e.Feedbacks {
		d.Feedback = append(d.Feedback, NewFeedbackRecord(f, ""))
	}
	return d
}

// NewParticipantRecord shapes p. eventName may be empty when the caller has not loaded the event.
func NewParticipantRecord(p *Participant, eventName string) *ParticipantRecord {
	return &ParticipantRecord{
		ID:          p.ID,
		EventID:     p.EventID,
		Name:        p.Name(),
		DisplayName: displayName(p.ID, p.Name()),
		EventName:   eventName,
	}
}

func NewSpeakerRecord(s *Speaker, eventName string) *SpeakerRecord {
	return &SpeakerRecord{
		ID:          s.ID,
		EventID:     s.EventID,
		Name:        s.Name(),
		Description: s.Description,
		DisplayName: displayName(s.ID, s.Name()),
		EventName:   eventName,
	}
}

func NewVendorRecord(v *Vendor, eventName string) *VendorRecord {
	return &VendorRecord{
		ID:          v.ID,
		EventID:     v.EventID,
		Name:        v.Name(),
		Services:    v.Services,
		DisplayName: displayName(v.ID, v.Name()),
		EventName:   eventName,
	}
}

// NewFeedbackRecord labels feedback by id since it has no name.
func NewFeedbackRecord(f *Feedback, eventName string) *FeedbackRecord {
	return &FeedbackRecord{
		ID:          f.ID,
		EventID:     f.EventID,
		Content:     f.Content(),
		DisplayName: fmt.Sprintf("Feedback %d", f.ID),
		EventName:   eventName,
	}
}
