package internal

import (
	"context"

	"github.com/grbod/dashboard/internal/airtable"
	"github.com/grbod/dashboard/internal/cli"
	"github.com/grbod/dashboard/internal/config"
	"github.com/grbod/dashboard/internal/dashboard"
	"github.com/grbod/dashboard/internal/freightview"
	"github.com/grbod/dashboard/internal/logging"
	"github.com/grbod/dashboard/internal/shipstation"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Run() error {
	var runner *cli.Runner

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		logging.Module(),
		freightview.Module(),
		shipstation.Module(),
		airtable.Module(),
		dashboard.Module(),
		cli.Module(),
		fx.Populate(&runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute()
}
