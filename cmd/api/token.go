package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"eventpoll/config"
	"eventpoll/internal/adapters/auth"
	"eventpoll/internal/domain"
	"eventpoll/internal/repository/postgres"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Register a user in the directory and print a bearer token for them.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true, Usage: "Email address of the user."},
			&cli.StringFlag{Name: "username", Usage: "Display name (defaults to the email's local part)."},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "Token lifetime."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.RequireJWTSecret(); err != nil {
				return err
			}

			db, err := postgres.Open(c.Context, cfg.DBUrl)
			if err != nil {
				return err
			}
			defer db.Close()

			user := &domain.User{
				Email:    domain.NormalizeEmail(c.String("email")),
				Username: strings.TrimSpace(c.String("username")),
			}
			if user.Username == "" {
				user.Username, _, _ = strings.Cut(user.Email, "@")
			}
			if err := postgres.NewUserRepository(db).Upsert(c.Context, user); err != nil {
				return fmt.Errorf("register user: %w", err)
			}

			token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(user.ID, user.Email, c.Duration("ttl"))
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}
