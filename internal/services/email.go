package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventmanager/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendEventCreated sends the organizer notice using the "event_created" template.
func (s *emailService) SendEventCreated(ctx context.Context, data *domain.EventCreatedEmailData) error {
	if data == nil {
		return fmt.Errorf("event created email data is nil")
	}
	return s.send(ctx, "event_created", data.To, data)
}

// SendParticipantRegistered sends the organizer notice using the "participant_registered" template.
func (s *emailService) SendParticipantRegistered(ctx context.Context, data *domain.ParticipantRegisteredEmailData) error {
	if data == nil {
		return fmt.Errorf("participant registered email data is nil")
	}
	return s.send(ctx, "participant_registered", data.To, data)
}

func (s *emailService) send(ctx context.Context, templateName, to string, data any) error {
	if to == "" {
		return fmt.Errorf("%s email: recipient is required", templateName)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", templateName, "to", to)
	return nil
}
