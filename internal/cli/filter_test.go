package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grbod/dashboard/internal/dashboard"
)

func filterFixture() []dashboard.Table {
	return []dashboard.Table{
		{
			Title:   "ShipStation Pending Orders",
			Columns: []string{"Order ID", "Store"},
			Rows: [][]string{
				{"ORD-1", "Shopify"},
				{"ORD-2", "Amazon"},
				{"ORD-3", "Shopify"},
			},
		},
		{
			Title:   "Upcoming Pickups",
			Columns: []string{"Vendor", "Status"},
			Rows:    [][]string{{"Acme", "Sent PO"}},
		},
	}
}

func TestFilterTables(t *testing.T) {
	tables, err := filterTables(filterFixture(), "Store=Shopify", zap.NewNop())
	require.NoError(t, err)

	require.Len(t, tables[0].Rows, 2)
	assert.Equal(t, "ORD-1", tables[0].Rows[0][0])
	assert.Equal(t, "ORD-3", tables[0].Rows[1][0])

	// tables without the column pass through untouched
	assert.Len(t, tables[1].Rows, 1)
}

func TestFilterTablesTrimsSpaces(t *testing.T) {
	tables, err := filterTables(filterFixture(), " Store = Amazon ", zap.NewNop())
	require.NoError(t, err)
	require.Len(t, tables[0].Rows, 1)
	assert.Equal(t, "ORD-2", tables[0].Rows[0][0])
}

func TestFilterTablesRejectsMalformedSpec(t *testing.T) {
	for _, spec := range []string{"Store", "=Shopify", "Store=", "="} {
		_, err := filterTables(filterFixture(), spec, zap.NewNop())
		assert.Error(t, err, spec)
	}
}
