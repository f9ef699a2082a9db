// Package dashboard aggregates the per-service fetch results into a
// single snapshot: normalized tables, per-service summaries and a
// combined view.
package dashboard

import (
	"context"
	"time"

	"github.com/grbod/dashboard/internal/airtable"
	"github.com/grbod/dashboard/internal/freightview"
	"github.com/grbod/dashboard/internal/shipstation"

	"go.uber.org/zap"
)

// FreightViewData is the freight fetch outcome for one refresh cycle.
type FreightViewData struct {
	Model freightview.Model
	Err   error
}

// ShipStationData is the fulfillment fetch outcome for one refresh cycle.
// Orders drive connectivity; shipments and stores are best-effort extras.
type ShipStationData struct {
	Orders    shipstation.OrdersResponse
	Shipments shipstation.ShipmentsResponse
	Stores    []shipstation.Store
	Err       error
}

// AirtableData is the procurement fetch outcome for one refresh cycle.
type AirtableData struct {
	Configured bool
	Records    []airtable.Record
	Err        error
}

// Snapshot carries the raw fetch results of one refresh cycle. Errors are
// explicit values here so callers can tell "zero records" from "fetch
// failed" without relying on log side effects.
type Snapshot struct {
	FreightView FreightViewData
	ShipStation ShipStationData
	Airtable    AirtableData
	FetchedAt   time.Time
}

// FreightFetcher is the freight-booking surface the aggregator needs.
type FreightFetcher interface {
	Shipments(ctx context.Context, status string) (freightview.Model, error)
}

// FulfillmentFetcher is the order-fulfillment surface the aggregator needs.
type FulfillmentFetcher interface {
	Orders(ctx context.Context, status string, daysBack int) (shipstation.OrdersResponse, error)
	Shipments(ctx context.Context, daysBack int) (shipstation.ShipmentsResponse, error)
	Stores(ctx context.Context) ([]shipstation.Store, error)
}

// ProcurementFetcher is the record-store surface the aggregator needs.
type ProcurementFetcher interface {
	Configured() bool
	UpcomingPickups(ctx context.Context) ([]airtable.Record, error)
}

// Service fetches from all three upstreams sequentially, best-effort: a
// failed service degrades to an empty dataset plus an error value, never
// a crash, and the next refresh cycle simply tries again.
type Service struct {
	freight FreightFetcher
	orders  FulfillmentFetcher
	pickups ProcurementFetcher
	logger  *zap.Logger
	now     func() time.Time

	OrderStatus    string
	ShipmentStatus string
	DaysBack       int
}

func NewService(fv FreightFetcher, ss FulfillmentFetcher, at ProcurementFetcher, logger *zap.Logger) *Service {
	return &Service{
		freight:        fv,
		orders:         ss,
		pickups:        at,
		logger:         logger.Named("dashboard"),
		now:            time.Now,
		OrderStatus:    shipstation.DefaultOrderStatus,
		ShipmentStatus: freightview.DefaultStatus,
		DaysBack:       shipstation.DefaultDaysBack,
	}
}

// Fetch runs one refresh cycle across all services.
func (s *Service) Fetch(ctx context.Context) Snapshot {
	snap := Snapshot{FetchedAt: s.now()}

	model, err := s.freight.Shipments(ctx, s.ShipmentStatus)
	if err != nil {
		s.logger.Error("freightview fetch failed", zap.Error(err))
		snap.FreightView.Err = err
	} else {
		snap.FreightView.Model = model
	}

	orders, err := s.orders.Orders(ctx, s.OrderStatus, s.DaysBack)
	if err != nil {
		s.logger.Error("shipstation orders fetch failed", zap.Error(err))
		snap.ShipStation.Err = err
	} else {
		snap.ShipStation.Orders = orders
	}

	shipments, err := s.orders.Shipments(ctx, s.DaysBack)
	if err != nil {
		s.logger.Error("shipstation shipments fetch failed", zap.Error(err))
		if snap.ShipStation.Err == nil {
			snap.ShipStation.Err = err
		}
	} else {
		snap.ShipStation.Shipments = shipments
	}

	stores, err := s.orders.Stores(ctx)
	if err != nil {
		s.logger.Error("shipstation stores fetch failed", zap.Error(err))
	} else {
		snap.ShipStation.Stores = stores
	}

	snap.Airtable.Configured = s.pickups.Configured()
	if snap.Airtable.Configured {
		records, err := s.pickups.UpcomingPickups(ctx)
		if err != nil {
			s.logger.Error("airtable fetch failed", zap.Error(err))
			snap.Airtable.Err = err
		} else {
			snap.Airtable.Records = records
		}
	}

	return snap
}
