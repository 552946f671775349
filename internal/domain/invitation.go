package domain

import "context"

// InvitationService manages the participant side of an event: answering invitations and
// listing the ones still open.
type InvitationService interface {
	Respond(ctx context.Context, eventID, userID string, status ParticipantStatus) (*Participant, error)
	PendingInvites(ctx context.Context, userID string) ([]*Event, error)
}
