package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventpoll/internal/delivery/http/helpers"
	"eventpoll/internal/domain"
)

const eventNotFound = "Event not found"

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
// Field rules are enforced by the event service so that ownership is checked first on update.
type EventRequest struct {
	Title        string      `json:"title" example:"Team dinner"`
	Description  string      `json:"description" example:"Pick a night that works"`
	DateOptions  []time.Time `json:"dateOptions"`
	Participants []string    `json:"participants" example:"alice@example.com"`
	PollQuestion string      `json:"pollQuestion,omitempty" example:"Choose a suitable date"`
}

func (req EventRequest) input() domain.EventInput {
	return domain.EventInput{
		Title:        req.Title,
		Description:  req.Description,
		DateOptions:  req.DateOptions,
		Participants: req.Participants,
		PollQuestion: req.PollQuestion,
	}
}

// EventSuccessResponse is the success envelope for create and update.
type EventSuccessResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message,omitempty"`
	Data    *domain.Event `json:"data"`
}

// EventViewSuccessResponse is the success envelope for GET /events/{eventID}.
type EventViewSuccessResponse struct {
	Success bool              `json:"success" example:"true"`
	Data    *domain.EventView `json:"data"`
}

// UserEventsSuccessResponse is the success envelope for GET /events.
type UserEventsSuccessResponse struct {
	Success bool               `json:"success" example:"true"`
	Data    *domain.UserEvents `json:"data"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List the caller's events
// @Description Returns the events the caller created and the events they were invited to, newest first.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.UserEventsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError (user missing)"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListEventsForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates a date poll. The caller becomes the creator and is added as an accepted participant; every other email is invited as pending.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "code: ValidationError"
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError (creator missing)"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), userID, req.input())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusCreated, "Event created successfully", event)
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns the event with its date options and participants, flagged with whether the caller created it.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventViewSuccessResponse
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	view, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// UpdateEvent godoc
// @Summary Replace an event
// @Description Creator only. Replaces title, description, poll question, date options and participants. Replacing date options clears every vote; participants other than the creator are reset to pending.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "code: ValidationError"
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 403 {object} helpers.APIResponse "code: AuthorizationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	// A body that fails to decode is still sent to the service as empty input so a
	// non-creator gets 403 whatever they posted.
	var req EventRequest
	decodeErr := helpers.DecodeJSON(r, &req)
	if decodeErr != nil {
		req = EventRequest{}
	}
	event, err := c.Service.UpdateEvent(r.Context(), r.PathValue("eventID"), userID, req.input())
	if err != nil {
		if decodeErr != nil && errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, decodeErr.Error())
			return
		}
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Event updated successfully", event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Creator only. Deletes the event with its date options, votes and participants.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "message: Event deleted successfully"
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 403 {object} helpers.APIResponse "code: AuthorizationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("eventID"), userID); err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Event deleted successfully", nil)
}
