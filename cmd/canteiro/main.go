package main

import (
	"context"
	"fmt"
	"os"

	"github.com/canteiro-app/canteiro/internal/app"
	"github.com/canteiro-app/canteiro/internal/cli"
	"github.com/canteiro-app/canteiro/internal/config"
	"github.com/canteiro-app/canteiro/internal/db"
	"github.com/canteiro-app/canteiro/internal/repository"
	"github.com/canteiro-app/canteiro/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	activityRepo := repository.NewSQLiteActivityRepo(database)
	requisitionRepo := repository.NewSQLiteRequisitionRepo(database)
	preferenceRepo := repository.NewSQLitePreferenceRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	ctx := context.Background()
	state, err := app.NewAppState(ctx, service.NewPreferenceStore(preferenceRepo))
	if err != nil {
		return err
	}

	application := &cli.App{
		Import:     service.NewImportService(uow, state, cfg.Location, observer),
		Activities: service.NewActivityService(activityRepo, observer),
		Reports:    service.NewReportService(activityRepo, requisitionRepo, observer),
		State:      state,
		Currency:   cfg.CurrencyCode,
		Location:   cfg.Location,
	}
	application.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(application).ExecuteContext(ctx)
}
