package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventpoll/internal/domain"
)

type pollService struct {
	eventRepo      domain.EventRepository
	pollCache      domain.PollCache
	exporter       domain.CalendarExporter
	logger         *slog.Logger
	location       *time.Location
	contextTimeout time.Duration
}

// NewPollService returns the poll aggregator. pollCache may be nil; labels are rendered in location.
func NewPollService(eventRepo domain.EventRepository, pollCache domain.PollCache, exporter domain.CalendarExporter, logger *slog.Logger, location *time.Location, timeout time.Duration) domain.PollService {
	if location == nil {
		location = time.UTC
	}
	return &pollService{
		eventRepo:      eventRepo,
		pollCache:      pollCache,
		exporter:       exporter,
		logger:         logger,
		location:       location,
		contextTimeout: timeout,
	}
}

func (s *pollService) GetPoll(ctx context.Context, eventID string) (*domain.Poll, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if s.pollCache != nil {
		poll, ok, err := s.pollCache.Get(ctx, eventID)
		if err != nil {
			s.logger.WarnContext(ctx, "poll cache read failed", "event_id", eventID, "err", err)
		} else if ok {
			return poll, nil
		}
	}

	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	poll := domain.BuildPoll(event, s.location)
	if s.pollCache != nil {
		if err := s.pollCache.Set(ctx, eventID, poll); err != nil {
			s.logger.WarnContext(ctx, "poll cache write failed", "event_id", eventID, "err", err)
		}
	}
	return poll, nil
}

// ExportCalendar renders the event's date options as an iCalendar document.
func (s *pollService) ExportCalendar(ctx context.Context, eventID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	out, err := s.exporter.Export(event, domain.BuildPoll(event, s.location))
	if err != nil {
		return nil, fmt.Errorf("export calendar: %w", err)
	}
	return out, nil
}

func (s *pollService) loadEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}
