package http

import (
	"net/http"

	"eventpoll/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers served by NewRouter.
type Controllers struct {
	Events      *controllers.EventController
	Invitations *controllers.InvitationController
	Votes       *controllers.VoteController
	Polls       *controllers.PollController
	Health      *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// requireAuth guards every private route; voteLimit throttles vote mutations.
func NewRouter(c Controllers, requireAuth, voteLimit func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", requireAuth(c.Events.ListEvents))
	mux.HandleFunc("POST /events", requireAuth(c.Events.CreateEvent))
	mux.HandleFunc("GET /events/{eventID}", requireAuth(c.Events.GetEvent))
	mux.HandleFunc("PUT /events/{eventID}", requireAuth(c.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(c.Events.DeleteEvent))

	// Invitations
	mux.HandleFunc("GET /events/invitations", requireAuth(c.Invitations.PendingInvites))
	mux.HandleFunc("POST /events/{eventID}/respond", requireAuth(c.Invitations.Respond))

	// Votes
	mux.HandleFunc("POST /events/{eventID}/vote", requireAuth(voteLimit(c.Votes.CastVote)))
	mux.HandleFunc("GET /events/{eventID}/vote", requireAuth(c.Votes.VoteStatus))
	mux.HandleFunc("DELETE /events/{eventID}/vote", requireAuth(voteLimit(c.Votes.RetractVote)))

	// Poll
	mux.HandleFunc("GET /events/{eventID}/poll", c.Polls.GetPoll)
	mux.HandleFunc("GET /events/{eventID}/calendar.ics", requireAuth(c.Polls.ExportCalendar))

	mux.HandleFunc("GET /healthz", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
