package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"eventpoll/config"
	"eventpoll/internal/adapters/auth"
	"eventpoll/internal/adapters/cache"
	"eventpoll/internal/adapters/calendar"
	"eventpoll/internal/adapters/email"
	httpdelivery "eventpoll/internal/delivery/http"
	"eventpoll/internal/delivery/http/controllers"
	"eventpoll/internal/delivery/http/middleware"
	"eventpoll/internal/domain"
	"eventpoll/internal/repository/postgres"
	"eventpoll/internal/services"
)

const shutdownTimeout = 5 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Usage: "Apply the schema before serving."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.RequireJWTSecret(); err != nil {
				return err
			}
			logger := config.NewLogger(cfg.Environment)

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := postgres.Open(ctx, cfg.DBUrl)
			if err != nil {
				return err
			}
			defer db.Close()

			if c.Bool("migrate") {
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}
				logger.Info("schema applied")
			}

			pollCache, closeCache := newPollCache(ctx, cfg.Redis, logger)
			defer closeCache()

			mailer, err := email.NewMailer(email.MailerConfig{
				Provider:    cfg.Email.Provider,
				FromAddress: cfg.Email.FromAddress,
				FromName:    cfg.Email.FromName,
				SES: email.SESConfig{
					Region:             cfg.Email.AWSRegion,
					AccessKeyID:        cfg.Email.AWSAccessKeyID,
					SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
					InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
				},
			}, logger)
			if err != nil {
				return fmt.Errorf("create mailer: %w", err)
			}
			renderer, err := email.NewTemplateRenderer()
			if err != nil {
				return fmt.Errorf("load email templates: %w", err)
			}

			eventRepo := postgres.NewEventRepository(db)
			voteRepo := postgres.NewVoteRepository(db)
			userRepo := postgres.NewUserRepository(db)

			emailService := services.NewEmailService(mailer, renderer, logger)
			eventService := services.NewEventService(eventRepo, userRepo, emailService, pollCache, logger, cfg.AppBaseURL, cfg.PollLocation, cfg.RequestTimeout)
			voteService := services.NewVoteService(voteRepo, pollCache, logger, cfg.RequestTimeout)
			pollService := services.NewPollService(eventRepo, pollCache, calendar.NewICSExporter(), logger, cfg.PollLocation, cfg.RequestTimeout)
			invitationService := services.NewInvitationService(eventRepo, userRepo, cfg.RequestTimeout)

			limiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
			mux := httpdelivery.NewRouter(httpdelivery.Controllers{
				Events:      controllers.NewEventController(logger, eventService),
				Invitations: controllers.NewInvitationController(logger, invitationService),
				Votes:       controllers.NewVoteController(logger, voteService),
				Polls:       controllers.NewPollController(logger, pollService),
				Health:      controllers.NewHealthController(logger, db),
			}, middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret), logger), limiter.Wrap)

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

// newPollCache returns the Redis poll cache when configured, or a no-op cache when
// REDIS_ADDR is empty or Redis is unreachable at startup.
func newPollCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (domain.PollCache, func()) {
	if cfg.Addr == "" {
		return cache.NewNoopPollCache(), func() {}
	}
	client, err := cache.NewRedisClient(ctx, cache.RedisConfig{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		logger.Warn("redis unavailable, poll cache disabled", "addr", cfg.Addr, "err", err)
		return cache.NewNoopPollCache(), func() {}
	}
	return cache.NewRedisPollCache(client, cfg.TTL), func() { _ = client.Close() }
}
