package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"MediaMap/internal/app"
	"MediaMap/internal/config"
	"MediaMap/internal/domain"
	"MediaMap/internal/logging"
	"MediaMap/internal/view"
)

const usage = `usage: mediamap [-sort score|recent] [-selected id] <command>

commands:
  serve   load the datasets and expose the JSON API
  report  write the static HTML digest
  list    print the ranking to stdout
`

func main() {
	sortFlag := flag.String("sort", "score", "ordering for report and list: score or recent")
	selectedFlag := flag.String("selected", "", "article id whose graph the report expands")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	mode, err := domain.ParseSortMode(*sortFlag)
	if err != nil {
		logger.Error("invalid sort flag", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, logger)

	command := flag.Arg(0)
	if command == "" {
		command = "serve"
	}

	switch command {
	case "serve":
		err = application.Serve(ctx)
	case "report":
		var path string
		path, err = application.Report(ctx, view.State{Mode: mode, Selected: *selectedFlag})
		if err == nil {
			fmt.Println(path)
		}
	case "list":
		err = application.List(ctx, mode, os.Stdout)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("application stopped", "command", command, "error", err)
		os.Exit(1)
	}
}
