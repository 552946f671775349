package domain

import "context"

// EmailMessage is one outgoing email. HTML or Text may be empty, not both.
type EmailMessage struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventInvitationEmailData holds data for the event invitation email.
type EventInvitationEmailData struct {
	Email        string
	InviterName  string
	InviterEmail string
	EventTitle   string
	Description  string
	PollQuestion string
	DateOptions  []string
	EventURL     string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventInvitation(ctx context.Context, data *EventInvitationEmailData) error
}
