package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	_ "eventpoll/docs"
)

// @title Event Poll API
// @version 1.0
// @description Event date polls: invite people by email, collect one vote per person and read the results.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	app := &cli.App{
		Name:  "eventpoll",
		Usage: "Serve the event date poll API.",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			tokenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application failed", "err", err)
		os.Exit(1)
	}
}
