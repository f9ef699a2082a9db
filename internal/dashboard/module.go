package dashboard

import (
	"github.com/grbod/dashboard/internal/airtable"
	"github.com/grbod/dashboard/internal/freightview"
	"github.com/grbod/dashboard/internal/shipstation"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"dashboard",
		fx.Provide(func(fv *freightview.Client, ss *shipstation.Client, at *airtable.Client, logger *zap.Logger) *Service {
			return NewService(fv, ss, at, logger)
		}),
	)
}
