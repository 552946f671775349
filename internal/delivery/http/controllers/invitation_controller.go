package controllers

import (
	"log/slog"
	"net/http"

	"eventpoll/internal/delivery/http/helpers"
	"eventpoll/internal/domain"
)

// RespondRequest is the request body for POST /events/{eventID}/respond.
type RespondRequest struct {
	Status domain.ParticipantStatus `json:"status" example:"accepted"`
}

// Validate implements helpers.Validator.
func (req *RespondRequest) Validate() []string {
	if req.Status != domain.StatusAccepted && req.Status != domain.StatusDeclined {
		return []string{"status must be accepted or declined"}
	}
	return nil
}

// ParticipantSuccessResponse is the success envelope for POST /events/{eventID}/respond.
type ParticipantSuccessResponse struct {
	Success bool                `json:"success" example:"true"`
	Message string              `json:"message"`
	Data    *domain.Participant `json:"data"`
}

// EventListSuccessResponse is the success envelope for GET /events/invitations.
type EventListSuccessResponse struct {
	Success bool            `json:"success" example:"true"`
	Data    []*domain.Event `json:"data"`
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// Respond godoc
// @Summary Answer an invitation
// @Description Moves the caller's participant entry from pending to accepted or declined. An invitation can be answered once.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param response body RespondRequest true "accepted or declined"
// @Success 200 {object} controllers.ParticipantSuccessResponse
// @Failure 400 {object} helpers.APIResponse "code: ValidationError (bad status or already answered)"
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 403 {object} helpers.APIResponse "code: AuthorizationError (not invited)"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/{eventID}/respond [post]
func (c *InvitationController) Respond(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	var req RespondRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	participant, err := c.Service.Respond(r.Context(), r.PathValue("eventID"), userID, req.Status)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Invitation "+string(participant.Status), participant)
}

// PendingInvites godoc
// @Summary List open invitations
// @Description Events created by someone else where the caller is still pending, newest first.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError (user missing)"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/invitations [get]
func (c *InvitationController) PendingInvites(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	events, err := c.Service.PendingInvites(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
