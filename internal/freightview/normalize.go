package freightview

import (
	"math"
	"time"

	"github.com/grbod/dashboard/internal/format"
)

// InboundRow is a display-ready inbound freight record.
type InboundRow struct {
	Consignee   string
	PONumber    string
	DeliveryEst string
	LastUpdate  string
	Carrier     string
	Tracking    string
	Price       *float64
	Weight      *float64
	CostPerLb   *float64
	Status      string
}

// OutboundRow is a display-ready outbound freight record.
type OutboundRow struct {
	Consignor   string
	InvNumber   string
	DeliveryEst string
	LastUpdate  string
	Carrier     string
	Tracking    string
	Email       string
	Price       *float64
	Weight      *float64
	CostPerLb   *float64
	Status      string
}

// InboundRows flattens inbound shipments for dashboard display. Optional
// fields fall back to their documented sentinels.
func InboundRows(model Model) []InboundRow {
	rows := make([]InboundRow, 0, len(model.Shipments))

	for _, s := range model.Shipments {
		if s.Direction != "inbound" {
			continue
		}

		row := InboundRow{
			Consignee:   format.NA,
			PONumber:    format.NA,
			DeliveryEst: datePart(s.Tracking.DeliveryDateEstimate),
			LastUpdate:  datePart(s.Tracking.LastUpdatedDate),
			Carrier:     carrierName(s.SelectedQuote),
			Tracking:    orNA(s.Tracking.TrackingNumber),
			Status:      s.Status,
		}

		if len(s.Locations) > 0 {
			row.Consignee = truncate(s.Locations[0].Company, 50)
		}
		if len(s.Locations) > 1 && len(s.Locations[1].RefNums) > 0 {
			row.PONumber = orNA(s.Locations[1].RefNums[0].Value)
		}

		row.Price, row.Weight, row.CostPerLb = costFields(s)
		rows = append(rows, row)
	}

	return rows
}

// OutboundRows flattens outbound shipments for dashboard display.
func OutboundRows(model Model) []OutboundRow {
	rows := make([]OutboundRow, 0, len(model.Shipments))

	for _, s := range model.Shipments {
		if s.Direction != "outbound" {
			continue
		}

		row := OutboundRow{
			Consignor:   format.NA,
			InvNumber:   format.NA,
			DeliveryEst: datePart(s.Tracking.DeliveryDateEstimate),
			LastUpdate:  datePart(s.Tracking.LastUpdatedDate),
			Carrier:     carrierName(s.SelectedQuote),
			Tracking:    orNA(s.Tracking.TrackingNumber),
			Email:       format.NA,
			Status:      s.Status,
		}

		if len(s.Locations) > 1 {
			row.Consignor = truncate(s.Locations[1].Company, 50)
			row.Email = orNA(s.Locations[1].ContactEmail)
		}
		if len(s.Locations) > 0 && len(s.Locations[0].RefNums) > 0 {
			row.InvNumber = orNA(s.Locations[0].RefNums[0].Value)
		}

		row.Price, row.Weight, row.CostPerLb = costFields(s)
		rows = append(rows, row)
	}

	return rows
}

// Metrics are the per-service freight summary values.
type Metrics struct {
	TotalShipments int
	InboundCount   int
	OutboundCount  int
	TotalCost      float64
	TotalWeight    float64
	AvgCostPerLb   float64
	DeliveredCount int
	DeliveryRate   float64
}

// Summarize computes summary metrics over normalized freight rows.
// Non-numeric values are already nil here and count as zero.
func Summarize(inbound []InboundRow, outbound []OutboundRow) Metrics {
	m := Metrics{
		InboundCount:   len(inbound),
		OutboundCount:  len(outbound),
		TotalShipments: len(inbound) + len(outbound),
	}

	var costsPerLb []float64
	add := func(price, weight, costPerLb *float64, status string) {
		if price != nil {
			m.TotalCost += *price
		}
		if weight != nil {
			m.TotalWeight += *weight
		}
		if costPerLb != nil {
			costsPerLb = append(costsPerLb, *costPerLb)
		}
		if status == "delivered" {
			m.DeliveredCount++
		}
	}

	for _, r := range inbound {
		add(r.Price, r.Weight, r.CostPerLb, r.Status)
	}
	for _, r := range outbound {
		add(r.Price, r.Weight, r.CostPerLb, r.Status)
	}

	if len(costsPerLb) > 0 {
		var sum float64
		for _, v := range costsPerLb {
			sum += v
		}
		m.AvgCostPerLb = format.Round2(sum / float64(len(costsPerLb)))
	}
	m.TotalCost = format.Round2(m.TotalCost)
	if m.TotalShipments > 0 {
		rate := float64(m.DeliveredCount) / float64(m.TotalShipments) * 100
		m.DeliveryRate = mathRound1(rate)
	}

	return m
}

func costFields(s Shipment) (price, weight, costPerLb *float64) {
	if s.SelectedQuote != nil && s.SelectedQuote.Amount != nil && *s.SelectedQuote.Amount > 0 {
		price = s.SelectedQuote.Amount
	}
	if s.Equipment != nil && s.Equipment.Weight != nil && *s.Equipment.Weight > 0 {
		weight = s.Equipment.Weight
	}
	costPerLb = format.CostPerUnitWeight(price, weight)
	return price, weight, costPerLb
}

func carrierName(q *Quote) string {
	if q == nil || q.AssetCarrierName == "" {
		return "Unknown"
	}
	return truncate(q.AssetCarrierName, 30)
}

// datePart reduces an ISO timestamp to its calendar date. Empty values
// become the sentinel; anything else passes through unchanged.
func datePart(s string) string {
	if s == "" {
		return format.NA
	}
	if len(s) >= 10 {
		if _, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return s[:10]
		}
	}
	return s
}

func orNA(s string) string {
	if s == "" {
		return format.NA
	}
	return s
}

func truncate(s string, max int) string {
	if s == "" {
		return format.NA
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func mathRound1(v float64) float64 {
	return math.Round(v*10) / 10
}
