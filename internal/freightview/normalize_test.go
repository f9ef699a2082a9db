package freightview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func sampleModel() Model {
	return Model{
		Shipments: []Shipment{
			{
				ShipmentID: "S1",
				Direction:  "inbound",
				Status:     "picked-up",
				Locations: []Location{
					{Company: "Body Nutrition"},
					{Company: "Acme Vendor", RefNums: []RefNum{{Value: "PO-1001"}}},
				},
				Tracking: Tracking{
					TrackingNumber:       "1Z999",
					DeliveryDateEstimate: "2025-08-15T00:00:00Z",
					LastUpdatedDate:      "2025-08-12T09:30:00Z",
				},
				SelectedQuote: &Quote{AssetCarrierName: "Old Dominion Freight Line", Amount: fptr(750.50)},
				Equipment:     &Equipment{Weight: fptr(1500)},
			},
			{
				ShipmentID: "S2",
				Direction:  "outbound",
				Status:     "delivered",
				Locations: []Location{
					{Company: "Body Nutrition", RefNums: []RefNum{{Value: "INV-2002"}}},
					{Company: "Customer Co", ContactEmail: "ops@customer.example"},
				},
				Tracking:      Tracking{TrackingNumber: "1Z888"},
				SelectedQuote: &Quote{AssetCarrierName: "XPO", Amount: fptr(500)},
				Equipment:     &Equipment{Weight: fptr(0)},
			},
			{
				ShipmentID: "S3",
				Direction:  "inbound",
				Status:     "picked-up",
				Tracking:   Tracking{},
			},
		},
	}
}

func TestInboundRows(t *testing.T) {
	rows := InboundRows(sampleModel())
	require.Len(t, rows, 2)

	r := rows[0]
	assert.Equal(t, "Body Nutrition", r.Consignee)
	assert.Equal(t, "PO-1001", r.PONumber)
	assert.Equal(t, "2025-08-15", r.DeliveryEst)
	assert.Equal(t, "2025-08-12", r.LastUpdate)
	assert.Equal(t, "Old Dominion Freight Line", r.Carrier)
	assert.Equal(t, "1Z999", r.Tracking)
	require.NotNil(t, r.CostPerLb)
	assert.Equal(t, 0.50, *r.CostPerLb)

	// shipment with no optional data gets sentinels throughout
	bare := rows[1]
	assert.Equal(t, "N/A", bare.Consignee)
	assert.Equal(t, "N/A", bare.PONumber)
	assert.Equal(t, "N/A", bare.DeliveryEst)
	assert.Equal(t, "N/A", bare.Tracking)
	assert.Equal(t, "Unknown", bare.Carrier)
	assert.Nil(t, bare.Price)
	assert.Nil(t, bare.CostPerLb)
}

func TestOutboundRows(t *testing.T) {
	rows := OutboundRows(sampleModel())
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "Customer Co", r.Consignor)
	assert.Equal(t, "INV-2002", r.InvNumber)
	assert.Equal(t, "ops@customer.example", r.Email)
	assert.Equal(t, "XPO", r.Carrier)
	// zero weight yields no cost-per-lb, never a division error
	assert.Nil(t, r.Weight)
	assert.Nil(t, r.CostPerLb)
	require.NotNil(t, r.Price)
	assert.Equal(t, 500.0, *r.Price)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	m := sampleModel()
	first := InboundRows(m)
	second := InboundRows(m)
	assert.Equal(t, first, second)
}

func TestSummarize(t *testing.T) {
	m := sampleModel()
	metrics := Summarize(InboundRows(m), OutboundRows(m))

	assert.Equal(t, 3, metrics.TotalShipments)
	assert.Equal(t, 2, metrics.InboundCount)
	assert.Equal(t, 1, metrics.OutboundCount)
	assert.Equal(t, 1250.50, metrics.TotalCost)
	assert.Equal(t, 1500.0, metrics.TotalWeight)
	assert.Equal(t, 0.50, metrics.AvgCostPerLb)
	assert.Equal(t, 1, metrics.DeliveredCount)
	assert.Equal(t, 33.3, metrics.DeliveryRate)
}

func TestSummarizeEmpty(t *testing.T) {
	metrics := Summarize(nil, nil)
	assert.Zero(t, metrics.TotalShipments)
	assert.Zero(t, metrics.TotalCost)
	assert.Zero(t, metrics.AvgCostPerLb)
	assert.Zero(t, metrics.DeliveryRate)
}

func TestTruncateLimitsCompanyNames(t *testing.T) {
	long := make([]rune, 80)
	for i := range long {
		long[i] = 'x'
	}
	m := Model{Shipments: []Shipment{{
		Direction: "inbound",
		Locations: []Location{{Company: string(long)}},
	}}}
	rows := InboundRows(m)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Consignee, 50)
}
