package domain

import (
	"context"
	"time"
)

// VoteStatus describes whether a user has voted in an event and for which option.
// swagger:model VoteStatus
type VoteStatus struct {
	HasVoted       bool    `json:"hasVoted"`
	SelectedOption *string `json:"selectedOption"`
}

// VoteRepository applies targeted vote mutations so concurrent voters never overwrite each other.
type VoteRepository interface {
	// Cast moves userID's vote to optionID. Returns ErrNotFound if the event or option is missing.
	Cast(ctx context.Context, eventID, optionID, userID string, at time.Time) error
	// Retract removes userID from every option of the event. Returns ErrNoVote if nothing was removed.
	Retract(ctx context.Context, eventID, userID string, at time.Time) error
	// Status returns the option userID voted for. Returns ErrNotFound if the event is missing.
	Status(ctx context.Context, eventID, userID string) (*VoteStatus, error)
}

// VoteService is the vote ledger: one active vote per user per event.
type VoteService interface {
	CastVote(ctx context.Context, eventID, userID, optionID string) error
	VoteStatus(ctx context.Context, eventID, userID string) (*VoteStatus, error)
	RetractVote(ctx context.Context, eventID, userID string) error
}
