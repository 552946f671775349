package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventpoll/internal/delivery/http/helpers"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthStatus is the body of a healthy response.
type HealthStatus struct {
	Status string `json:"status" example:"ok"`
}

type HealthController struct {
	Logger *slog.Logger
	DB     Pinger
}

func NewHealthController(logger *slog.Logger, db Pinger) *HealthController {
	return &HealthController{
		Logger: logger,
		DB:     db,
	}
}

// Health godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data: {status: ok}"
// @Failure 503 {object} helpers.APIResponse "code: PersistenceError"
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()
	if err := c.DB.PingContext(ctx); err != nil {
		c.Logger.ErrorContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unavailable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ok"})
}
