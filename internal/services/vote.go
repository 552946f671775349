package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventpoll/internal/domain"
)

type voteService struct {
	voteRepo       domain.VoteRepository
	pollCache      domain.PollCache
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewVoteService returns the vote ledger. pollCache may be nil.
func NewVoteService(voteRepo domain.VoteRepository, pollCache domain.PollCache, logger *slog.Logger, timeout time.Duration) domain.VoteService {
	return &voteService{
		voteRepo:       voteRepo,
		pollCache:      pollCache,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// CastVote records userID's vote for optionID, moving any previous vote in the same event.
func (s *voteService) CastVote(ctx context.Context, eventID, userID, optionID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	optionID = strings.TrimSpace(optionID)
	if optionID == "" {
		return fmt.Errorf("%w: date option ID is required", domain.ErrInvalidInput)
	}
	if err := s.voteRepo.Cast(ctx, eventID, optionID, userID, s.now().UTC()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("cast vote: %w", err)
	}
	s.invalidatePoll(ctx, eventID)
	return nil
}

func (s *voteService) VoteStatus(ctx context.Context, eventID, userID string) (*domain.VoteStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	status, err := s.voteRepo.Status(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("vote status: %w", err)
	}
	return status, nil
}

// RetractVote removes userID's vote. It fails with ErrNoVote when there is nothing to remove.
func (s *voteService) RetractVote(ctx context.Context, eventID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.voteRepo.Retract(ctx, eventID, userID, s.now().UTC()); err != nil {
		if errors.Is(err, domain.ErrNoVote) {
			return domain.ErrNoVote
		}
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("retract vote: %w", err)
	}
	s.invalidatePoll(ctx, eventID)
	return nil
}

func (s *voteService) invalidatePoll(ctx context.Context, eventID string) {
	if s.pollCache == nil {
		return
	}
	if err := s.pollCache.Invalidate(ctx, eventID); err != nil {
		s.logger.WarnContext(ctx, "poll cache invalidation failed", "event_id", eventID, "err", err)
	}
}
