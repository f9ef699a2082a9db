package dashboard

import (
	"strconv"

	"github.com/grbod/dashboard/internal/airtable"
	"github.com/grbod/dashboard/internal/format"
	"github.com/grbod/dashboard/internal/freightview"
	"github.com/grbod/dashboard/internal/shipstation"
)

// Table is a flat, display-ready view of one service's records.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Tables normalizes a snapshot into the five dashboard tables. Failed or
// unconfigured services yield empty tables. Internal raw-date fields are
// never exposed as columns.
func Tables(snap Snapshot) []Table {
	names := shipstation.StoreNames(snap.ShipStation.Stores)

	tables := []Table{
		InboundTable(freightview.InboundRows(snap.FreightView.Model)),
		OutboundTable(freightview.OutboundRows(snap.FreightView.Model)),
		OrdersTable(shipstation.OrderRows(snap.ShipStation.Orders, names)),
		ShipmentsTable(shipstation.ShipmentRows(snap.ShipStation.Shipments)),
	}
	if snap.Airtable.Configured {
		tables = append(tables, PickupsTable(airtable.PickupRows(snap.Airtable.Records)))
	}
	return tables
}

func InboundTable(rows []freightview.InboundRow) Table {
	t := Table{
		Title: "FreightView Inbound Freight",
		Columns: []string{
			"Consignee", "PO Number", "Delivery Est", "Last Update",
			"Carrier Name", "Tracking", "Price", "Weight", "Cost per lb", "Status",
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Consignee, r.PONumber, r.DeliveryEst, r.LastUpdate,
			r.Carrier, r.Tracking,
			format.MoneyPtr(r.Price), floatCell(r.Weight), format.MoneyPtr(r.CostPerLb),
			r.Status,
		})
	}
	return t
}

func OutboundTable(rows []freightview.OutboundRow) Table {
	t := Table{
		Title: "FreightView Outbound Freight",
		Columns: []string{
			"Consignor", "Inv Number", "Delivery Est", "Last Update",
			"Carrier Name", "Tracking", "Email", "Price", "Weight", "Cost per lb", "Status",
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Consignor, r.InvNumber, r.DeliveryEst, r.LastUpdate,
			r.Carrier, r.Tracking, r.Email,
			format.MoneyPtr(r.Price), floatCell(r.Weight), format.MoneyPtr(r.CostPerLb),
			r.Status,
		})
	}
	return t
}

func OrdersTable(rows []shipstation.OrderRow) Table {
	t := Table{
		Title: "ShipStation Pending Orders",
		Columns: []string{
			"Order ID", "Status", "Customer", "Ship To", "Store", "Items",
			"Order Total", "Weight", "Order Date", "Ship Date", "Carrier", "Service",
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.OrderID, r.Status, r.Customer, r.ShipTo, r.Store,
			strconv.Itoa(r.Items), format.MoneyPtr(r.OrderTotal), r.Weight,
			r.OrderDate, r.ShipDate, r.Carrier, r.Service,
		})
	}
	return t
}

func ShipmentsTable(rows []shipstation.ShipmentRow) Table {
	t := Table{
		Title: "ShipStation Recent Shipments",
		Columns: []string{
			"Shipment ID", "Order Number", "Customer", "Ship To", "Tracking",
			"Carrier", "Service", "Weight", "Weight Unit", "Cost", "Ship Date", "Voided",
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(r.ShipmentID, 10), r.OrderNumber, r.Customer, r.ShipTo,
			r.Tracking, r.Carrier, r.Service,
			strconv.FormatFloat(r.Weight, 'f', -1, 64), r.WeightUnit,
			format.MoneyPtr(r.Cost), r.ShipDate, strconv.FormatBool(r.Voided),
		})
	}
	return t
}

func PickupsTable(rows []airtable.PickupRow) Table {
	t := Table{
		Title: "Upcoming Pickups",
		Columns: []string{
			"Record ID", "Vendor", "PO Number", "Status", "Vendor Ready-Date",
			"Product", "Quantity", "Unit Cost", "Total Cost", "Carrier", "Tracking", "Notes",
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.RecordID, r.Vendor, r.PONumber, r.Status, r.ReadyDate,
			r.Product, r.Quantity, r.UnitCost, r.TotalCost, r.Carrier, r.Tracking, r.Notes,
		})
	}
	return t
}

func floatCell(v *float64) string {
	if v == nil {
		return format.NA
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
