package domain

import (
	"context"
	"strings"
	"time"
)

// DefaultPollQuestion is used when an event is created or updated without a poll question.
const DefaultPollQuestion = "Choose a suitable date"

// Field limits for events.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// ParticipantStatus is the invitation state of a participant.
type ParticipantStatus string

const (
	StatusPending  ParticipantStatus = "pending"
	StatusAccepted ParticipantStatus = "accepted"
	StatusDeclined ParticipantStatus = "declined"
)

// Valid reports whether s is one of the known statuses.
func (s ParticipantStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// DateOption is a candidate date for an event. It only exists inside its event.
// swagger:model DateOption
type DateOption struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Voters []string  `json:"voters"`
}

// HasVoter reports whether userID is in the option's voter set.
func (o *DateOption) HasVoter(userID string) bool {
	for _, v := range o.Voters {
		if v == userID {
			return true
		}
	}
	return false
}

// Participant is an invited email address and its invitation status.
// swagger:model Participant
type Participant struct {
	Email  string            `json:"email"`
	Status ParticipantStatus `json:"status"`
}

// Event is a scheduling poll: a set of candidate dates, the people invited and their votes.
// swagger:model Event
type Event struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	CreatorID    string         `json:"-"`
	Creator      UserSummary    `json:"creator"`
	PollQuestion string         `json:"pollQuestion"`
	DateOptions  []*DateOption  `json:"dateOptions"`
	Participants []*Participant `json:"participants"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Option returns the date option with the given id, or nil.
func (e *Event) Option(id string) *DateOption {
	for _, o := range e.DateOptions {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// VoteOf returns the id of the first option userID voted for.
func (e *Event) VoteOf(userID string) (string, bool) {
	for _, o := range e.DateOptions {
		if o.HasVoter(userID) {
			return o.ID, true
		}
	}
	return "", false
}

// Participant returns the participant entry for email (normalized before lookup), or nil.
func (e *Event) Participant(email string) *Participant {
	email = NormalizeEmail(email)
	for _, p := range e.Participants {
		if p.Email == email {
			return p
		}
	}
	return nil
}

// IsCreatedBy reports whether userID owns the event.
func (e *Event) IsCreatedBy(userID string) bool {
	return e.CreatorID == userID
}

// IsPendingFor reports whether email has an unanswered invitation to the event.
func (e *Event) IsPendingFor(email string) bool {
	p := e.Participant(email)
	return p != nil && p.Status == StatusPending
}

// NormalizeEmail lower-cases and trims an email so it can be used as a participant key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AssembleParticipants builds the participant list for an event: the creator first as accepted,
// then every other email as pending. Blank entries are skipped and duplicates collapse onto
// their first occurrence; the creator's own email never produces a second entry.
func AssembleParticipants(creatorEmail string, emails []string) []*Participant {
	creatorEmail = NormalizeEmail(creatorEmail)
	out := make([]*Participant, 0, len(emails)+1)
	out = append(out, &Participant{Email: creatorEmail, Status: StatusAccepted})
	seen := map[string]struct{}{creatorEmail: {}}
	for _, raw := range emails {
		email := NormalizeEmail(raw)
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, &Participant{Email: email, Status: StatusPending})
	}
	return out
}

// EventInput carries the user-supplied fields for creating or fully replacing an event.
type EventInput struct {
	Title        string
	Description  string
	DateOptions  []time.Time
	Participants []string
	PollQuestion string
}

// EventView is an event annotated for the requesting user.
// swagger:model EventView
type EventView struct {
	*Event
	IsCreator bool              `json:"isCreator"`
	MyStatus  ParticipantStatus `json:"myStatus,omitempty"`
}

// UserEvents groups the events a user created and the ones they were invited to.
// swagger:model UserEvents
type UserEvents struct {
	Created []*Event `json:"createdEvents"`
	Invited []*Event `json:"invitedEvents"`
}

// EventRepository defines the interface for event storage. Date options and participants are
// stored and replaced together with their event.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*Event, error)
	// ListByParticipantEmail returns events where email is a participant and creatorID is not the owner.
	ListByParticipantEmail(ctx context.Context, email, excludeCreatorID string) ([]*Event, error)
	// Replace overwrites title, description, poll question, date options and participants.
	Replace(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	// UpdateParticipantStatus moves a participant from one status to another.
	// Returns ErrInvalidTransition if the participant is no longer in the from status.
	UpdateParticipantStatus(ctx context.Context, eventID, email string, from, to ParticipantStatus, at time.Time) error
}

// EventService defines the business logic for the event store.
type EventService interface {
	CreateEvent(ctx context.Context, creatorID string, in EventInput) (*Event, error)
	GetEvent(ctx context.Context, eventID, requesterID string) (*EventView, error)
	UpdateEvent(ctx context.Context, eventID, requesterID string, in EventInput) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, requesterID string) error
	ListEventsForUser(ctx context.Context, userID string) (*UserEvents, error)
}
