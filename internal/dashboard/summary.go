package dashboard

import (
	"github.com/grbod/dashboard/internal/airtable"
	"github.com/grbod/dashboard/internal/format"
	"github.com/grbod/dashboard/internal/freightview"
	"github.com/grbod/dashboard/internal/shipstation"
)

// Status is a service's connectivity indicator, re-derived from scratch
// each refresh cycle rather than tracked as transitions.
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

type FreightViewSummary struct {
	freightview.Metrics
	Status Status
}

type ShipStationSummary struct {
	PendingOrders   int
	ShippedOrders   int
	TotalOrderValue float64
	AvgOrderValue   float64
	Stores          []shipstation.StoreCount
	Status          Status
}

type AirtableSummary struct {
	airtable.PickupSummary
	Configured bool
	Status     Status
}

// CombinedSummary sums counts and monetary totals across services.
type CombinedSummary struct {
	TotalActiveShipments int
	TotalValue           float64
}

type Summary struct {
	FreightView FreightViewSummary
	ShipStation ShipStationSummary
	Airtable    AirtableSummary
	Combined    CombinedSummary
}

// Summarize computes the unified summary for one snapshot. A service is
// connected only when its fetch succeeded and returned at least one
// record.
func Summarize(snap Snapshot) Summary {
	var summary Summary

	summary.FreightView.Status = StatusDisconnected
	if snap.FreightView.Err == nil && len(snap.FreightView.Model.Shipments) > 0 {
		inbound := freightview.InboundRows(snap.FreightView.Model)
		outbound := freightview.OutboundRows(snap.FreightView.Model)
		summary.FreightView = FreightViewSummary{
			Metrics: freightview.Summarize(inbound, outbound),
			Status:  StatusConnected,
		}
	}

	summary.ShipStation.Status = StatusDisconnected
	if snap.ShipStation.Err == nil && len(snap.ShipStation.Orders.Orders) > 0 {
		names := shipstation.StoreNames(snap.ShipStation.Stores)
		orderRows := shipstation.OrderRows(snap.ShipStation.Orders, names)
		shipmentRows := shipstation.ShipmentRows(snap.ShipStation.Shipments)

		var totalValue float64
		for _, r := range orderRows {
			if r.OrderTotal != nil {
				totalValue += *r.OrderTotal
			}
		}
		avg := 0.0
		if len(orderRows) > 0 {
			avg = format.Round2(totalValue / float64(len(orderRows)))
		}

		summary.ShipStation = ShipStationSummary{
			PendingOrders:   len(orderRows),
			ShippedOrders:   len(shipmentRows),
			TotalOrderValue: format.Round2(totalValue),
			AvgOrderValue:   avg,
			Stores:          shipstation.StoreBreakdown(orderRows),
			Status:          StatusConnected,
		}
	}

	summary.Airtable = AirtableSummary{
		PickupSummary: airtable.Summarize(snap.Airtable.Records),
		Configured:    snap.Airtable.Configured,
		Status:        StatusDisconnected,
	}
	if snap.Airtable.Configured && snap.Airtable.Err == nil && len(snap.Airtable.Records) > 0 {
		summary.Airtable.Status = StatusConnected
	}

	summary.Combined = CombinedSummary{
		TotalActiveShipments: summary.FreightView.TotalShipments + summary.ShipStation.PendingOrders,
		TotalValue:           format.Round2(summary.FreightView.TotalCost + summary.ShipStation.TotalOrderValue),
	}

	return summary
}
