package airtable

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"airtable",
		fx.Provide(NewClient),
	)
}
