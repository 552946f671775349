package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventpoll/internal/delivery/http/helpers"
	"eventpoll/internal/delivery/http/middleware"
	"eventpoll/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testUserID = "user-123"

var (
	t1 = time.Date(2025, 3, 3, 18, 30, 0, 0, time.UTC)
	t2 = time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
)

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:           "ev-1",
		Title:        "Team dinner",
		Description:  "Pick a night",
		CreatorID:    testUserID,
		PollQuestion: domain.DefaultPollQuestion,
		DateOptions: []*domain.DateOption{
			{ID: "opt-1", Date: t1, Voters: []string{}},
			{ID: "opt-2", Date: t2, Voters: []string{}},
		},
		Participants: []*domain.Participant{
			{Email: "bob@example.com", Status: domain.StatusAccepted},
			{Email: "alice@x.com", Status: domain.StatusPending},
		},
		CreatedAt: t1,
		UpdatedAt: t1,
	}
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err             error
	event           *domain.Event
	events          *domain.UserEvents
	lastCreatorID   string
	lastRequesterID string
	lastEventID     string
	lastInput       domain.EventInput
}

func (f *fakeEventService) CreateEvent(ctx context.Context, creatorID string, in domain.EventInput) (*domain.Event, error) {
	f.lastCreatorID = creatorID
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, eventID, requesterID string) (*domain.EventView, error) {
	f.lastEventID = eventID
	f.lastRequesterID = requesterID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.EventView{Event: f.event, IsCreator: f.event.IsCreatedBy(requesterID)}, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, eventID, requesterID string, in domain.EventInput) (*domain.Event, error) {
	f.lastEventID = eventID
	f.lastRequesterID = requesterID
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, eventID, requesterID string) error {
	f.lastEventID = eventID
	f.lastRequesterID = requesterID
	return f.err
}

func (f *fakeEventService) ListEventsForUser(ctx context.Context, userID string) (*domain.UserEvents, error) {
	f.lastRequesterID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

// fakeVoteService implements domain.VoteService.
type fakeVoteService struct {
	err          error
	status       *domain.VoteStatus
	lastEventID  string
	lastUserID   string
	lastOptionID string
}

func (f *fakeVoteService) CastVote(ctx context.Context, eventID, userID, optionID string) error {
	f.lastEventID, f.lastUserID, f.lastOptionID = eventID, userID, optionID
	return f.err
}

func (f *fakeVoteService) VoteStatus(ctx context.Context, eventID, userID string) (*domain.VoteStatus, error) {
	f.lastEventID, f.lastUserID = eventID, userID
	if f.err != nil {
		return nil, f.err
	}
	return f.status, nil
}

func (f *fakeVoteService) RetractVote(ctx context.Context, eventID, userID string) error {
	f.lastEventID, f.lastUserID = eventID, userID
	return f.err
}

// fakePollService implements domain.PollService.
type fakePollService struct {
	err         error
	poll        *domain.Poll
	calendar    []byte
	lastEventID string
}

func (f *fakePollService) GetPoll(ctx context.Context, eventID string) (*domain.Poll, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.poll, nil
}

func (f *fakePollService) ExportCalendar(ctx context.Context, eventID string) ([]byte, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.calendar, nil
}

// fakeInvitationService implements domain.InvitationService.
type fakeInvitationService struct {
	err         error
	pending     []*domain.Event
	lastEventID string
	lastUserID  string
	lastStatus  domain.ParticipantStatus
}

func (f *fakeInvitationService) Respond(ctx context.Context, eventID, userID string, status domain.ParticipantStatus) (*domain.Participant, error) {
	f.lastEventID, f.lastUserID, f.lastStatus = eventID, userID, status
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Participant{Email: "alice@x.com", Status: status}, nil
}

func (f *fakeInvitationService) PendingInvites(ctx context.Context, userID string) ([]*domain.Event, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.pending, nil
}

// newRequest builds a request with an optional JSON body, the eventID path value and,
// when authed is true, the test user in the context.
func newRequest(method, target, eventID, body string, authed bool) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, "http://test"+target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if eventID != "" {
		req.SetPathValue("eventID", eventID)
	}
	if authed {
		req = req.WithContext(middleware.SetUserID(req.Context(), testUserID))
	}
	return req
}

// decodeEnvelope decodes the response envelope and, when data is non-nil, its data field.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) helpers.APIResponse {
	t.Helper()
	var raw struct {
		helpers.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw), "response must be valid JSON envelope")
	if data != nil {
		require.NotEmpty(t, raw.Data, "data must be present")
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.APIResponse
}
