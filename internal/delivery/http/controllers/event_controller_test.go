package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventpoll/internal/delivery/http/helpers"
	"eventpoll/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		noUserContext bool
		fakeErr       error
		wantStatus    int
		wantCode      string
		wantErrSubstr string
		checkInput    func(t *testing.T, in domain.EventInput)
	}{
		{
			name:       "success",
			body:       `{"title":"Team dinner","description":"Pick a night","dateOptions":["2025-03-03T18:30:00Z","2025-03-04T09:00:00Z"],"participants":["alice@x.com"]}`,
			wantStatus: http.StatusCreated,
			checkInput: func(t *testing.T, in domain.EventInput) {
				assert.Equal(t, "Team dinner", in.Title)
				require.Len(t, in.DateOptions, 2)
				assert.True(t, in.DateOptions[0].Equal(t1))
				assert.Equal(t, []string{"alice@x.com"}, in.Participants)
				assert.Empty(t, in.PollQuestion)
			},
		},
		{
			name:          "no user in context",
			body:          `{"title":"x"}`,
			noUserContext: true,
			wantStatus:    http.StatusUnauthorized,
			wantCode:      helpers.ErrCodeUnauthorized,
			wantErrSubstr: "unauthorized",
		},
		{
			name:          "invalid json",
			body:          `{invalid`,
			wantStatus:    http.StatusBadRequest,
			wantCode:      helpers.ErrCodeValidation,
			wantErrSubstr: "invalid request body",
		},
		{
			name:          "unknown field rejected",
			body:          `{"title":"x","id":"custom"}`,
			wantStatus:    http.StatusBadRequest,
			wantCode:      helpers.ErrCodeValidation,
			wantErrSubstr: "unknown field",
		},
		{
			name:          "non RFC3339 date rejected",
			body:          `{"title":"x","description":"y","dateOptions":["tomorrow"]}`,
			wantStatus:    http.StatusBadRequest,
			wantCode:      helpers.ErrCodeValidation,
			wantErrSubstr: "invalid request body",
		},
		{
			name:          "service validation error",
			body:          `{"title":"","description":"y","dateOptions":["2025-03-03T18:30:00Z"]}`,
			fakeErr:       fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput),
			wantStatus:    http.StatusBadRequest,
			wantCode:      helpers.ErrCodeValidation,
			wantErrSubstr: "title and description are required",
		},
		{
			name:          "creator missing",
			body:          `{"title":"x","description":"y","dateOptions":["2025-03-03T18:30:00Z"]}`,
			fakeErr:       domain.ErrUserNotFound,
			wantStatus:    http.StatusNotFound,
			wantCode:      helpers.ErrCodeNotFound,
			wantErrSubstr: "user not found",
		},
		{
			name:          "service error is not leaked",
			body:          `{"title":"x","description":"y","dateOptions":["2025-03-03T18:30:00Z"]}`,
			fakeErr:       errors.New("db error"),
			wantStatus:    http.StatusInternalServerError,
			wantCode:      helpers.ErrCodeInternalError,
			wantErrSubstr: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.fakeErr, event: sampleEvent()}
			ctrl := NewEventController(testLogger, fake)
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, newRequest(http.MethodPost, "/events", "", tt.body, !tt.noUserContext))

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusCreated {
				var event domain.Event
				envelope := decodeEnvelope(t, rr, &event)
				assert.True(t, envelope.Success)
				assert.Equal(t, "Event created successfully", envelope.Message)
				assert.Equal(t, "ev-1", event.ID)
				assert.Equal(t, testUserID, fake.lastCreatorID)
				tt.checkInput(t, fake.lastInput)
				return
			}
			envelope := decodeEnvelope(t, rr, nil)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.wantCode, envelope.Code)
			assert.Contains(t, envelope.Error, tt.wantErrSubstr)
		})
	}
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name          string
		fakeErr       error
		wantStatus    int
		wantErrSubstr string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "not found", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantErrSubstr: "Event not found"},
		{name: "service error", fakeErr: errors.New("db error"), wantStatus: http.StatusInternalServerError, wantErrSubstr: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.fakeErr, event: sampleEvent()}
			ctrl := NewEventController(testLogger, fake)
			rr := httptest.NewRecorder()

			ctrl.GetEvent(rr, newRequest(http.MethodGet, "/events/ev-1", "ev-1", "", true))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "ev-1", fake.lastEventID)
			if tt.wantStatus == http.StatusOK {
				var view domain.EventView
				decodeEnvelope(t, rr, &view)
				require.NotNil(t, view.Event)
				assert.Equal(t, "Team dinner", view.Title)
				assert.True(t, view.IsCreator)
				require.Len(t, view.DateOptions, 2)
				return
			}
			envelope := decodeEnvelope(t, rr, nil)
			assert.Contains(t, envelope.Error, tt.wantErrSubstr)
		})
	}
}

func TestEventController_GetEvent_Unauthorized(t *testing.T) {
	fake := &fakeEventService{event: sampleEvent()}
	ctrl := NewEventController(testLogger, fake)
	rr := httptest.NewRecorder()

	ctrl.GetEvent(rr, newRequest(http.MethodGet, "/events/ev-1", "ev-1", "", false))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, fake.lastEventID, "service must not be called")
}

func TestEventController_UpdateEvent(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		fakeErr       error
		wantStatus    int
		wantCode      string
		wantErrSubstr string
	}{
		{
			name:       "success",
			body:       `{"title":"New","description":"d","dateOptions":["2025-03-03T18:30:00Z"],"participants":[]}`,
			wantStatus: http.StatusOK,
		},
		{
			name:          "non creator gets 403 before validation",
			body:          `{"title":""}`,
			fakeErr:       domain.ErrForbidden,
			wantStatus:    http.StatusForbidden,
			wantCode:      helpers.ErrCodeForbidden,
			wantErrSubstr: "not allowed",
		},
		{
			name:          "non creator gets 403 on malformed body",
			body:          `{broken`,
			fakeErr:       domain.ErrForbidden,
			wantStatus:    http.StatusForbidden,
			wantCode:      helpers.ErrCodeForbidden,
			wantErrSubstr: "not allowed",
		},
		{
			name:          "creator with malformed body gets decode error",
			body:          `{broken`,
			fakeErr:       fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput),
			wantStatus:    http.StatusBadRequest,
			wantCode:      helpers.ErrCodeValidation,
			wantErrSubstr: "invalid request body",
		},
		{
			name:          "validation error",
			body:          `{"title":"t","description":"d","dateOptions":[]}`,
			fakeErr:       fmt.Errorf("%w: at least one date option is required", domain.ErrInvalidInput),
			wantStatus:    http.StatusBadRequest,
			wantCode:      helpers.ErrCodeValidation,
			wantErrSubstr: "at least one date option is required",
		},
		{
			name:          "not found",
			body:          `{"title":"t"}`,
			fakeErr:       domain.ErrNotFound,
			wantStatus:    http.StatusNotFound,
			wantCode:      helpers.ErrCodeNotFound,
			wantErrSubstr: "Event not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.fakeErr, event: sampleEvent()}
			ctrl := NewEventController(testLogger, fake)
			rr := httptest.NewRecorder()

			ctrl.UpdateEvent(rr, newRequest(http.MethodPut, "/events/ev-1", "ev-1", tt.body, true))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "ev-1", fake.lastEventID)
			assert.Equal(t, testUserID, fake.lastRequesterID)
			envelope := decodeEnvelope(t, rr, nil)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, envelope.Success)
				assert.Equal(t, "Event updated successfully", envelope.Message)
				assert.Equal(t, "New", fake.lastInput.Title)
				return
			}
			assert.Equal(t, tt.wantCode, envelope.Code)
			assert.Contains(t, envelope.Error, tt.wantErrSubstr)
		})
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "forbidden", fakeErr: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeForbidden},
		{name: "not found", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "service error", fakeErr: errors.New("db error"), wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			rr := httptest.NewRecorder()

			ctrl.DeleteEvent(rr, newRequest(http.MethodDelete, "/events/ev-1", "ev-1", "", true))

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr, nil)
			assert.Equal(t, tt.wantCode, envelope.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "Event deleted successfully", envelope.Message)
			}
		})
	}
}

func TestEventController_ListEvents(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		created := sampleEvent()
		invited := sampleEvent()
		invited.ID = "ev-2"
		fake := &fakeEventService{events: &domain.UserEvents{
			Created: []*domain.Event{created},
			Invited: []*domain.Event{invited},
		}}
		ctrl := NewEventController(testLogger, fake)
		rr := httptest.NewRecorder()

		ctrl.ListEvents(rr, newRequest(http.MethodGet, "/events", "", "", true))

		require.Equal(t, http.StatusOK, rr.Code)
		var data domain.UserEvents
		decodeEnvelope(t, rr, &data)
		require.Len(t, data.Created, 1)
		require.Len(t, data.Invited, 1)
		assert.Equal(t, "ev-1", data.Created[0].ID)
		assert.Equal(t, "ev-2", data.Invited[0].ID)
		assert.Equal(t, testUserID, fake.lastRequesterID)
	})

	t.Run("service error", func(t *testing.T) {
		fake := &fakeEventService{err: errors.New("db error")}
		ctrl := NewEventController(testLogger, fake)
		rr := httptest.NewRecorder()

		ctrl.ListEvents(rr, newRequest(http.MethodGet, "/events", "", "", true))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		envelope := decodeEnvelope(t, rr, nil)
		assert.NotContains(t, envelope.Error, "db error")
	})
}
