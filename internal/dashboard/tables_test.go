package dashboard

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grbod/dashboard/internal/freightview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesFromSnapshot(t *testing.T) {
	tables := Tables(connectedSnapshot())
	require.Len(t, tables, 5)

	titles := make([]string, 0, len(tables))
	for _, table := range tables {
		titles = append(titles, table.Title)
	}
	assert.Equal(t, []string{
		"FreightView Inbound Freight",
		"FreightView Outbound Freight",
		"ShipStation Pending Orders",
		"ShipStation Recent Shipments",
		"Upcoming Pickups",
	}, titles)
}

func TestTablesOmitPickupsWhenUnconfigured(t *testing.T) {
	snap := connectedSnapshot()
	snap.Airtable.Configured = false
	tables := Tables(snap)
	assert.Len(t, tables, 4)
}

func TestTablesEmptySnapshot(t *testing.T) {
	tables := Tables(Snapshot{})
	require.Len(t, tables, 4)
	for _, table := range tables {
		assert.Empty(t, table.Rows, table.Title)
		assert.NotEmpty(t, table.Columns, table.Title)
	}
}

func TestInboundTableFormatsMoney(t *testing.T) {
	rows := []freightview.InboundRow{{
		Consignee: "Acme",
		PONumber:  "PO-1",
		Carrier:   "ODFL",
		Price:     fptr(1234.5),
		Weight:    fptr(1500),
		CostPerLb: fptr(0.82),
		Status:    "picked-up",
	}, {
		Consignee: "N/A",
	}}

	table := InboundTable(rows)
	require.Len(t, table.Rows, 2)

	priceIdx := columnIndex(table, "Price")
	costIdx := columnIndex(table, "Cost per lb")
	weightIdx := columnIndex(table, "Weight")
	assert.Equal(t, "$1,234.50", table.Rows[0][priceIdx])
	assert.Equal(t, "$0.82", table.Rows[0][costIdx])
	assert.Equal(t, "1500", table.Rows[0][weightIdx])
	assert.Equal(t, "N/A", table.Rows[1][priceIdx])
	assert.Equal(t, "N/A", table.Rows[1][costIdx])
}

func TestFilterAndSearch(t *testing.T) {
	table := Table{
		Title:   "Orders",
		Columns: []string{"Carrier", "Status"},
		Rows: [][]string{
			{"ups", "awaiting_shipment"},
			{"fedex", "awaiting_shipment"},
			{"ups", "shipped"},
		},
	}

	filtered := Filter(table, "Carrier", "ups")
	require.Len(t, filtered.Rows, 2)

	assert.Len(t, Filter(table, "Carrier", All).Rows, 3)
	assert.Len(t, Filter(table, "Nope", "x").Rows, 3)

	found := Search(table, "FED")
	require.Len(t, found.Rows, 1)
	assert.Equal(t, "fedex", found.Rows[0][0])

	assert.Len(t, Search(table, "").Rows, 3)
}

func TestColumnValues(t *testing.T) {
	table := Table{
		Columns: []string{"Carrier"},
		Rows:    [][]string{{"ups"}, {"fedex"}, {"ups"}},
	}
	assert.Equal(t, []string{"ups", "fedex"}, ColumnValues(table, "Carrier"))
	assert.Nil(t, ColumnValues(table, "Missing"))
}

func TestWriteCSV(t *testing.T) {
	table := Table{
		Columns: []string{"Vendor", "Total Cost"},
		Rows:    [][]string{{"Acme, Inc", "$1,000.00"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))
	assert.Equal(t, "Vendor,Total Cost\n\"Acme, Inc\",\"$1,000.00\"\n", buf.String())
}

func TestExportNamesFileByTitleAndTimestamp(t *testing.T) {
	dir := t.TempDir()
	table := Table{Title: "Upcoming Pickups", Columns: []string{"Vendor"}, Rows: [][]string{{"Acme"}}}
	now := time.Date(2025, 8, 13, 9, 15, 30, 0, time.UTC)

	path, err := Export(dir, table, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "upcoming_pickups_20250813_091530.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Vendor\nAcme\n", string(data))
}
