package freightview

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"freightview",
		fx.Provide(NewClient),
	)
}
