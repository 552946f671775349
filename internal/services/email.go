package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventpoll/internal/domain"
)

const invitationTemplate = "event_invitation"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService renders invitation templates and hands the result to mailer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendEventInvitation mails one invitation. Replies go to the inviter.
func (s *emailService) SendEventInvitation(ctx context.Context, data *domain.EventInvitationEmailData) error {
	if data == nil {
		return errors.New("event invitation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(invitationTemplate, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", invitationTemplate, err)
	}
	msg := domain.EmailMessage{
		To:      data.Email,
		ReplyTo: data.InviterEmail,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send event invitation: %w", err)
	}
	s.logger.InfoContext(ctx, "event invitation sent", "to", data.Email, "event", data.EventTitle)
	return nil
}
