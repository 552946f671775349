package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventpoll/internal/delivery/http/helpers"
	"eventpoll/internal/domain"
)

// VoteRequest is the request body for POST /events/{eventID}/vote.
type VoteRequest struct {
	DateOptionID string `json:"dateOptionId" example:"5f0c7c1e-3a2b-4a51-9d1e-0b7d1d2f9a11"`
}

// Validate implements helpers.Validator.
func (req *VoteRequest) Validate() []string {
	if strings.TrimSpace(req.DateOptionID) == "" {
		return []string{"dateOptionId is required"}
	}
	return nil
}

// VoteStatusSuccessResponse is the success envelope for GET /events/{eventID}/vote.
type VoteStatusSuccessResponse struct {
	Success bool               `json:"success" example:"true"`
	Data    *domain.VoteStatus `json:"data"`
}

type VoteController struct {
	Logger  *slog.Logger
	Service domain.VoteService
}

func NewVoteController(logger *slog.Logger, svc domain.VoteService) *VoteController {
	return &VoteController{
		Logger:  logger,
		Service: svc,
	}
}

// CastVote godoc
// @Summary Vote for a date option
// @Description Records the caller's vote. A caller holds at most one vote per event, so voting again moves the vote.
// @Tags votes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param vote body VoteRequest true "Chosen date option"
// @Success 200 {object} helpers.APIResponse "message: Vote recorded successfully"
// @Failure 400 {object} helpers.APIResponse "code: ValidationError"
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError (event or option)"
// @Failure 429 {object} helpers.APIResponse "code: RateLimitError"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/{eventID}/vote [post]
func (c *VoteController) CastVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	var req VoteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.CastVote(r.Context(), r.PathValue("eventID"), userID, req.DateOptionID); err != nil {
		writeServiceError(w, r, c.Logger, err, "Event or date option not found")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Vote recorded successfully", nil)
}

// VoteStatus godoc
// @Summary Get the caller's vote
// @Description Reports whether the caller has voted in the event and which option they chose.
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.VoteStatusSuccessResponse
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/{eventID}/vote [get]
func (c *VoteController) VoteStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	status, err := c.Service.VoteStatus(r.Context(), r.PathValue("eventID"), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, status)
}

// RetractVote godoc
// @Summary Remove the caller's vote
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "message: Vote removed successfully"
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError (event missing or no vote)"
// @Failure 429 {object} helpers.APIResponse "code: RateLimitError"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/{eventID}/vote [delete]
func (c *VoteController) RetractVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}
	if err := c.Service.RetractVote(r.Context(), r.PathValue("eventID"), userID); err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Vote removed successfully", nil)
}
