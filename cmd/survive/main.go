package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pixil98/go-service"

	"github.com/pixil98/go-survive/cmd/survive/command"
)

func main() {
	runner := command.NewRunner()

	app, err := service.NewApp(runner.Config(), runner.Build)
	if err != nil {
		slog.Error("creating application", "error", err)
		os.Exit(1)
	}

	err = runner.Run(context.Background(), app)
	if err != nil {
		slog.Error("running application", "error", err)
		os.Exit(1)
	}

	slog.Info("exiting")
}
