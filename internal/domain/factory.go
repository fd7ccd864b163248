package domain

// NewEvent returns a validated Event with no ID. Dependent constructors take the parent event id first.
func NewEvent(name, date string, budget int64) (*Event, error) {
	e := &Event{}
	if err := e.SetName(name); err != nil {
		return nil, err
	}
	if err := e.SetDate(date); err != nil {
		return nil, err
	}
	if err := e.SetBudget(budget); err != nil {
		return nil, err
	}
	return e, nil
}

func NewParticipant(eventID int64, name string) (*Participant, error) {
	if eventID <= 0 {
		return nil, NewValidationError("event_id", "event id is required")
	}
	p := &Participant{EventID: eventID}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	return p, nil
}

func NewSpeaker(eventID int64, name, description string) (*Speaker, error) {
	if eventID <= 0 {
		return nil, NewValidationError("event_id", "event id is required")
	}
	s := &Speaker{EventID: eventID, Description: description}
	if err := s.SetName(name); err != nil {
		return nil, err
	}
	return s, nil
}

func NewVendor(eventID int64, name, services string) (*Vendor, error) {
	if eventID <= 0 {
		return nil, NewValidationError("event_id", "event id is required")
	}
	v := &Vendor{EventID: eventID, Services: services}
	if err := v.SetName(name); err != nil {
		return nil, err
	}
	return v, nil
}

func NewFeedback(eventID int64, content string) (*Feedback, error) {
	if eventID <= 0 {
		return nil, NewValidationError("event_id", "event id is required")
	}
	f := &Feedback{EventID: eventID}
	if err := f.SetContent(content); err != nil {
		return nil, err
	}
	return f, nil
}
