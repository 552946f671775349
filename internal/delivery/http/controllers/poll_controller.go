package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventpoll/internal/delivery/http/helpers"
	"eventpoll/internal/domain"
)

// PollSuccessResponse is the success envelope for GET /events/{eventID}/poll.
type PollSuccessResponse struct {
	Success bool         `json:"success" example:"true"`
	Data    *domain.Poll `json:"data"`
}

type PollController struct {
	Logger  *slog.Logger
	Service domain.PollService
}

func NewPollController(logger *slog.Logger, svc domain.PollService) *PollController {
	return &PollController{
		Logger:  logger,
		Service: svc,
	}
}

// GetPoll godoc
// @Summary Get the poll results
// @Description Public. Returns the vote count and rounded percentage per date option, plus the current winners. No winner is reported while nobody has voted.
// @Tags poll
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.PollSuccessResponse
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/{eventID}/poll [get]
func (c *PollController) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll, err := c.Service.GetPoll(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, poll)
}

// ExportCalendar godoc
// @Summary Export the event as iCalendar
// @Description One VEVENT per date option with the organizer and attendees; a sole winning option is marked CONFIRMED.
// @Tags poll
// @Produce text/calendar
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {string} string "iCalendar document"
// @Failure 401 {object} helpers.APIResponse "code: AuthenticationError"
// @Failure 404 {object} helpers.APIResponse "code: NotFoundError"
// @Failure 500 {object} helpers.APIResponse "code: PersistenceError"
// @Router /events/{eventID}/calendar.ics [get]
func (c *PollController) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	doc, err := c.Service.ExportCalendar(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, eventNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "event-"+eventID+".ics"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
