package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/alumnihub/portal-cli/internal/buildinfo"
	"github.com/alumnihub/portal-cli/internal/client/cli"
	"github.com/alumnihub/portal-cli/internal/client/config"
	"github.com/alumnihub/portal-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
