package main

import (
	"github.com/urfave/cli/v2"

	"eventpoll/config"
	"eventpoll/internal/repository/postgres"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the database schema and exit.",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := config.NewLogger(cfg.Environment)

			db, err := postgres.Open(c.Context, cfg.DBUrl)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(c.Context, db); err != nil {
				return err
			}
			logger.Info("schema applied")
			return nil
		},
	}
}
