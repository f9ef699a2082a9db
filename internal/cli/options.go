package cli

import "time"

type Options struct {
	OrderStatus   string
	FreightStatus string
	DaysBack      int
	JSON          bool
	Watch         bool
	Interval      time.Duration
	ExportDir     string
	Search        string
	Filter        string
	Timeout       time.Duration
}
