package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"eventpoll/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	pollCache      domain.PollCache
	logger         *slog.Logger
	baseURL        string
	location       *time.Location
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService returns the event store service. emailService and pollCache may be nil.
func NewEventService(eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	pollCache domain.PollCache,
	logger *slog.Logger,
	baseURL string,
	location *time.Location,
	timeout time.Duration,
) domain.EventService {
	if location == nil {
		location = time.UTC
	}
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		pollCache:      pollCache,
		logger:         logger,
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		location:       location,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, creatorID string, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := normalizeEventInput(&in); err != nil {
		return nil, err
	}
	creator, err := s.getUser(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	event := &domain.Event{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		CreatorID:    creator.ID,
		Creator:      creator.Summary(),
		PollQuestion: in.PollQuestion,
		DateOptions:  newDateOptions(in.DateOptions),
		Participants: domain.AssembleParticipants(creator.Email, in.Participants),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.sendInvitations(ctx, event, creator, event.Participants[1:])
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID, requesterID string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	view := &domain.EventView{Event: event, IsCreator: event.IsCreatedBy(requesterID)}
	user, err := s.userRepo.GetByID(ctx, requesterID)
	switch {
	case err == nil:
		if p := event.Participant(user.Email); p != nil {
			view.MyStatus = p.Status
		}
	case !errors.Is(err, domain.ErrUserNotFound):
		s.logger.WarnContext(ctx, "participant status lookup failed", "event_id", eventID, "user_id", requesterID, "err", err)
	}
	return view, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, requesterID string, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsCreatedBy(requesterID) {
		return nil, domain.ErrForbidden
	}
	if err := normalizeEventInput(&in); err != nil {
		return nil, err
	}
	creator, err := s.getUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	previous := make(map[string]struct{}, len(event.Participants))
	for _, p := range event.Participants {
		previous[p.Email] = struct{}{}
	}

	event.Title = in.Title
	event.Description = in.Description
	event.PollQuestion = in.PollQuestion
	event.Creator = creator.Summary()
	event.DateOptions = newDateOptions(in.DateOptions)
	event.Participants = domain.AssembleParticipants(creator.Email, in.Participants)
	event.UpdatedAt = s.now().UTC()

	if err := s.eventRepo.Replace(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.invalidatePoll(ctx, event.ID)

	var added []*domain.Participant
	for _, p := range event.Participants[1:] {
		if _, ok := previous[p.Email]; !ok {
			added = append(added, p)
		}
	}
	s.sendInvitations(ctx, event, creator, added)
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, requesterID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if !event.IsCreatedBy(requesterID) {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	s.invalidatePoll(ctx, eventID)
	return nil
}

func (s *eventService) ListEventsForUser(ctx context.Context, userID string) (*domain.UserEvents, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	created, err := s.eventRepo.ListByCreator(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list created events: %w", err)
	}
	invited, err := s.eventRepo.ListByParticipantEmail(ctx, user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list invited events: %w", err)
	}
	if created == nil {
		created = []*domain.Event{}
	}
	if invited == nil {
		invited = []*domain.Event{}
	}
	return &domain.UserEvents{Created: created, Invited: invited}, nil
}

func (s *eventService) getEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) getUser(ctx context.Context, userID string) (*domain.User, error) {
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

func (s *eventService) invalidatePoll(ctx context.Context, eventID string) {
	if s.pollCache == nil {
		return
	}
	if err := s.pollCache.Invalidate(ctx, eventID); err != nil {
		s.logger.WarnContext(ctx, "poll cache invalidation failed", "event_id", eventID, "err", err)
	}
}

// sendInvitations emails every participant in to. Failures are logged; the event is already saved.
func (s *eventService) sendInvitations(ctx context.Context, event *domain.Event, inviter *domain.User, to []*domain.Participant) {
	if s.emailService == nil || len(to) == 0 {
		return
	}
	inviterName := strings.TrimSpace(inviter.Username)
	if inviterName == "" {
		inviterName = inviter.Email
	}
	dates := make([]string, len(event.DateOptions))
	for i, o := range event.DateOptions {
		dates[i] = domain.FormatOptionLabel(o.Date, s.location)
	}
	eventURL := ""
	if s.baseURL != "" {
		eventURL = s.baseURL + "/events/" + event.ID
	}
	for _, p := range to {
		data := &domain.EventInvitationEmailData{
			Email:        p.Email,
			InviterName:  inviterName,
			InviterEmail: inviter.Email,
			EventTitle:   event.Title,
			Description:  event.Description,
			PollQuestion: event.PollQuestion,
			DateOptions:  dates,
			EventURL:     eventURL,
		}
		if err := s.emailService.SendEventInvitation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "invitation email failed", "event_id", event.ID, "email", p.Email, "err", err)
		}
	}
}

func newDateOptions(dates []time.Time) []*domain.DateOption {
	out := make([]*domain.DateOption, len(dates))
	for i, d := range dates {
		out[i] = &domain.DateOption{
			ID:     uuid.NewString(),
			Date:   d.UTC(),
			Voters: []string{},
		}
	}
	return out
}

// normalizeEventInput trims the input in place and enforces the event field rules.
func normalizeEventInput(in *domain.EventInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.PollQuestion = strings.TrimSpace(in.PollQuestion)

	if in.Title == "" || in.Description == "" {
		return fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(in.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", domain.ErrInvalidInput, domain.MaxTitleLength)
	}
	if utf8.RuneCountInString(in.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", domain.ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if len(in.DateOptions) == 0 {
		return fmt.Errorf("%w: at least one date option is required", domain.ErrInvalidInput)
	}
	for _, d := range in.DateOptions {
		if d.IsZero() {
			return fmt.Errorf("%w: date options must be valid timestamps", domain.ErrInvalidInput)
		}
	}
	for _, e := range in.Participants {
		email := domain.NormalizeEmail(e)
		if email == "" {
			continue
		}
		if !emailRegexp.MatchString(email) {
			return fmt.Errorf("%w: invalid participant email %q", domain.ErrInvalidInput, e)
		}
	}
	if in.PollQuestion == "" {
		in.PollQuestion = domain.DefaultPollQuestion
	}
	return nil
}
