package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/grbod/dashboard/internal/config"
	"github.com/grbod/dashboard/internal/dashboard"
	"github.com/grbod/dashboard/internal/freightview"
	"github.com/grbod/dashboard/internal/shipstation"

	"go.uber.org/zap"
)

type Runner struct {
	options Options
	cfg     config.Config
	logger  *zap.Logger
	service *dashboard.Service
}

func NewRunner(cfg config.Config, logger *zap.Logger, service *dashboard.Service) *Runner {
	logger = logger.Named("cli")
	opts := Options{
		OrderStatus:   shipstation.DefaultOrderStatus,
		FreightStatus: freightview.DefaultStatus,
		DaysBack:      shipstation.DefaultDaysBack,
		Interval:      15 * time.Minute,
		Timeout:       cfg.Timeout,
	}

	return &Runner{
		options: opts,
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

func (r *Runner) Execute() error {
	return runCLI(&r.options, r.cfg, r.logger, r.service)
}

func runCLI(opts *Options, cfg config.Config, logger *zap.Logger, service *dashboard.Service) error {
	var intervalMinutes int

	fs := flag.NewFlagSet("shipdash", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", fs.Name())
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.OrderStatus, "order-status", opts.OrderStatus, "ShipStation order status filter")
	fs.StringVar(&opts.FreightStatus, "freight-status", opts.FreightStatus, "FreightView shipment status filter")
	fs.IntVar(&opts.DaysBack, "days-back", opts.DaysBack, "Order/shipment date range in days")
	fs.BoolVar(&opts.JSON, "json", false, "Output JSON format")
	fs.BoolVar(&opts.Watch, "watch", false, "Keep refreshing until interrupted")
	fs.IntVar(&intervalMinutes, "interval", int(opts.Interval.Minutes()), "Refresh interval in minutes (watch mode)")
	fs.StringVar(&opts.ExportDir, "export-dir", "", "Directory to write CSV exports into")
	fs.StringVar(&opts.Search, "search", "", "Only show rows containing this text")
	fs.StringVar(&opts.Filter, "filter", "", "Only show rows matching Column=Value exactly")
	fs.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "Deadline for one full refresh cycle")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			fs.Usage()
			return nil
		}
		return err
	}

	if intervalMinutes > 0 {
		opts.Interval = time.Duration(intervalMinutes) * time.Minute
	}

	// credentials are checked before any fetch is attempted
	if err := cfg.Validate(); err != nil {
		return err
	}

	service.OrderStatus = opts.OrderStatus
	service.ShipmentStatus = opts.FreightStatus
	service.DaysBack = opts.DaysBack

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if opts.Watch {
		return runWatch(ctx, opts, logger, service)
	}
	return runOnce(ctx, opts, logger, service)
}

func runOnce(ctx context.Context, opts *Options, logger *zap.Logger, service *dashboard.Service) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	snap := service.Fetch(ctx)
	summary := dashboard.Summarize(snap)
	tables := dashboard.Tables(snap)

	if opts.Search != "" {
		for i := range tables {
			tables[i] = dashboard.Search(tables[i], opts.Search)
		}
	}
	if opts.Filter != "" {
		var err error
		tables, err = filterTables(tables, opts.Filter, logger)
		if err != nil {
			return err
		}
	}

	logger.Info("refresh complete",
		zap.String("freightview_status", string(summary.FreightView.Status)),
		zap.String("shipstation_status", string(summary.ShipStation.Status)),
		zap.String("airtable_status", string(summary.Airtable.Status)),
		zap.Int("combined_active_shipments", summary.Combined.TotalActiveShipments),
	)

	if opts.ExportDir != "" {
		if err := exportTables(opts.ExportDir, tables, snap.FetchedAt, logger); err != nil {
			return err
		}
	}

	if opts.JSON {
		return writeJSON(os.Stdout, snap, summary, tables)
	}
	return writeHuman(os.Stdout, snap, summary, tables)
}

// runWatch polls on a fixed interval. Within the cache TTL a render costs
// no network round trips; once the window elapses the next tick refetches.
func runWatch(ctx context.Context, opts *Options, logger *zap.Logger, service *dashboard.Service) error {
	if err := runOnce(ctx, opts, logger, service); err != nil {
		return err
	}

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := runOnce(ctx, opts, logger, service); err != nil {
				// degrade and try again next cycle
				logger.Error("refresh failed", zap.Error(err))
			}
		}
	}
}

// filterTables narrows every table carrying the named column to rows whose
// value matches exactly. Tables without the column are left alone. A filter
// that empties a table logs the column's available values.
func filterTables(tables []dashboard.Table, spec string, logger *zap.Logger) ([]dashboard.Table, error) {
	column, value, ok := strings.Cut(spec, "=")
	column = strings.TrimSpace(column)
	value = strings.TrimSpace(value)
	if !ok || column == "" || value == "" {
		return nil, fmt.Errorf("invalid filter %q, expected Column=Value", spec)
	}

	for i := range tables {
		choices := dashboard.ColumnValues(tables[i], column)
		if choices == nil {
			continue
		}
		tables[i] = dashboard.Filter(tables[i], column, value)
		if len(tables[i].Rows) == 0 {
			logger.Info("filter matched no rows",
				zap.String("table", tables[i].Title),
				zap.String("column", column),
				zap.Strings("choices", choices),
			)
		}
	}
	return tables, nil
}

func exportTables(dir string, tables []dashboard.Table, fetchedAt time.Time, logger *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	for _, table := range tables {
		path, err := dashboard.Export(dir, table, fetchedAt)
		if err != nil {
			return err
		}
		logger.Info("exported table", zap.String("path", path), zap.Int("rows", len(table.Rows)))
	}
	return nil
}
