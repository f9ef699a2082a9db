package shipstation

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"shipstation",
		fx.Provide(NewClient),
	)
}
