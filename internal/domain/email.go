package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventCreatedEmailData holds data for the organizer notice sent when an event is created.
type EventCreatedEmailData struct {
	To        string
	EventID   int64
	EventName string
	Date      string
	Budget    int64
}

// ParticipantRegisteredEmailData holds data for the organizer notice sent when a participant registers.
type ParticipantRegisteredEmailData struct {
	To              string
	EventID         int64
	EventName       string
	ParticipantName string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventCreated(ctx context.Context, data *EventCreatedEmailData) error
	SendParticipantRegistered(ctx context.Context, data *ParticipantRegisteredEmailData) error
}
