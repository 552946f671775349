package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventpoll/internal/domain"
)

type invitationService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewInvitationService returns the participant tracker used for accepting and declining invitations.
func NewInvitationService(eventRepo domain.EventRepository, userRepo domain.UserRepository, timeout time.Duration) domain.InvitationService {
	return &invitationService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// Respond moves the caller's pending invitation to accepted or declined.
func (s *invitationService) Respond(ctx context.Context, eventID, userID string, status domain.ParticipantStatus) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if status != domain.StatusAccepted && status != domain.StatusDeclined {
		return nil, fmt.Errorf("%w: status must be accepted or declined", domain.ErrInvalidInput)
	}
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	p := event.Participant(user.Email)
	if p == nil {
		return nil, domain.ErrForbidden
	}
	if p.Status != domain.StatusPending {
		return nil, domain.ErrInvalidTransition
	}
	if err := s.eventRepo.UpdateParticipantStatus(ctx, eventID, p.Email, domain.StatusPending, status, s.now().UTC()); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return nil, domain.ErrInvalidTransition
		}
		return nil, fmt.Errorf("update participant status: %w", err)
	}
	return &domain.Participant{Email: p.Email, Status: status}, nil
}

// PendingInvites lists the events where the user's invitation is still unanswered.
func (s *invitationService) PendingInvites(ctx context.Context, userID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	invited, err := s.eventRepo.ListByParticipantEmail(ctx, user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list invited events: %w", err)
	}
	pending := make([]*domain.Event, 0, len(invited))
	for _, e := range invited {
		if e.IsPendingFor(user.Email) {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

func (s *invitationService) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
