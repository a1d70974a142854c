package main

import (
	"fmt"
	"log/slog"
	"os"

	"kebabhouse/cmd"
	apihttp "kebabhouse/internal/adapters/in/http"
	"kebabhouse/internal/pkg/props"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := props.Load(".env"); err != nil {
		slog.Warn("No .env file loaded, using process environment", "error", err)
	}

	config, err := cmd.ConfigFromProps(props.NewProvider())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	if err := root.JobManager().StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer root.JobManager().StopAll()

	startWebServer(root, config.HTTPPort)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	apihttp.NewServer(root.OrderFacade()).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
