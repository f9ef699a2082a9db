package shipstation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/grbod/dashboard/internal/format"
)

// storeAbbreviations maps known full store names to short display names.
// Unmapped names pass through unchanged.
var storeAbbreviations = map[string]string{
	"Bala":                       "Bala",
	"Body Nutrition - Wholesale": "Wholesale",
	"Gym Molly Store":            "Gym Molly",
	"MWL Buyside Store":          "MWL",
	"Manual Orders":              "Manual",
	"MediWeight OLD Orders":      "MWL OLD",
	"New Amazon Store":           "Amazon",
	"Rate Browser":               "Unused",
	"Shopify Store":              "Shopify",
	"TestRateShopping":           "TEST",
}

// OrderRow is a display-ready pending order.
type OrderRow struct {
	OrderID      string
	Status       string
	Customer     string
	ShipTo       string
	Items        int
	OrderTotal   *float64
	Weight       string
	OrderDate    string
	ShipDate     string
	Carrier      string
	Service      string
	Store        string
	RawOrderDate string
}

// ShipmentRow is a display-ready fulfilled shipment.
type ShipmentRow struct {
	ShipmentID  int64
	OrderNumber string
	Customer    string
	ShipTo      string
	Tracking    string
	Carrier     string
	Service     string
	Weight      float64
	WeightUnit  string
	Cost        *float64
	ShipDate    string
	Voided      bool
}

// StoreNames builds the store-identifier to store-name lookup from the
// side-loaded stores listing.
func StoreNames(stores []Store) map[string]string {
	names := make(map[string]string, len(stores))
	for _, s := range stores {
		if s.StoreID != 0 && s.StoreName != "" {
			names[strconv.FormatInt(s.StoreID, 10)] = s.StoreName
		}
	}
	return names
}

// ResolveStore maps an order's embedded store identifier to its short
// display name. Unresolved identifiers become "Store {id}"; orders with no
// identifier at all become "Unknown Store".
func ResolveStore(order Order, names map[string]string) string {
	id := storeID(order)

	var key string
	switch {
	case id != "" && names[id] != "":
		key = names[id]
	case id != "":
		key = fmt.Sprintf("Store %s", id)
	default:
		key = "Unknown Store"
	}

	key = strings.TrimSpace(key)
	if abbrev, ok := storeAbbreviations[key]; ok {
		return abbrev
	}
	return key
}

// OrderRows flattens pending orders for dashboard display, resolving each
// order's store identifier against the supplied lookup.
func OrderRows(resp OrdersResponse, storeNames map[string]string) []OrderRow {
	rows := make([]OrderRow, 0, len(resp.Orders))

	for _, order := range resp.Orders {
		items := 0
		for _, item := range order.Items {
			if item.Quantity != nil {
				items += *item.Quantity
			}
		}

		shipDate := order.ShipDate
		if shipDate == "" {
			shipDate = "Not Shipped"
		}
		carrier := order.CarrierCode
		if carrier == "" {
			carrier = "Not Assigned"
		}

		rows = append(rows, OrderRow{
			OrderID:      order.OrderNumber,
			Status:       order.OrderStatus,
			Customer:     orNA(order.CustomerEmail),
			ShipTo:       shipToDisplay(order.ShipTo),
			Items:        items,
			OrderTotal:   order.OrderTotal,
			Weight:       weightDisplay(order.Weight),
			OrderDate:    format.Timestamp(order.OrderDate),
			ShipDate:     shipDate,
			Carrier:      carrier,
			Service:      orNA(order.RequestedShippingService),
			Store:        ResolveStore(order, storeNames),
			RawOrderDate: order.OrderDate,
		})
	}

	return rows
}

// ShipmentRows flattens fulfilled shipments for dashboard display.
func ShipmentRows(resp ShipmentsResponse) []ShipmentRow {
	rows := make([]ShipmentRow, 0, len(resp.Shipments))

	for _, s := range resp.Shipments {
		var weight float64
		unit := "LBS"
		if s.Weight != nil {
			if s.Weight.Value != nil {
				weight = *s.Weight.Value
			}
			if s.Weight.Units != "" {
				unit = s.Weight.Units
			}
		}

		tracking := s.TrackingNumber
		if tracking == "" {
			tracking = "No Tracking"
		}
		carrier := s.CarrierCode
		if carrier == "" {
			carrier = "Unknown"
		}

		rows = append(rows, ShipmentRow{
			ShipmentID:  s.ShipmentID,
			OrderNumber: s.OrderNumber,
			Customer:    orNA(s.CustomerEmail),
			ShipTo:      shipToDisplay(s.ShipTo),
			Tracking:    tracking,
			Carrier:     carrier,
			Service:     orNA(s.ServiceCode),
			Weight:      weight,
			WeightUnit:  unit,
			Cost:        s.ShipmentCost,
			ShipDate:    s.ShipDate,
			Voided:      s.Voided,
		})
	}

	return rows
}

// StoreCount is one entry of the pending-orders-per-store breakdown.
type StoreCount struct {
	Store string
	Count int
}

// StoreBreakdown counts pending orders per resolved store name, sorted
// descending by count.
func StoreBreakdown(rows []OrderRow) []StoreCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Store]++
	}

	breakdown := make([]StoreCount, 0, len(counts))
	for store, count := range counts {
		breakdown = append(breakdown, StoreCount{Store: store, Count: count})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Store < breakdown[j].Store
	})
	return breakdown
}

func storeID(order Order) string {
	if order.AdvancedOptions == nil {
		return ""
	}
	switch v := order.AdvancedOptions["storeId"].(type) {
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case string:
		return strings.TrimSpace(v)
	default:
		return ""
	}
}

func shipToDisplay(addr *Address) string {
	if addr == nil {
		return ""
	}
	company := addr.Company
	if company == "" {
		company = addr.Name
	}
	return fmt.Sprintf("%s (%s)", company, addr.City)
}

func weightDisplay(w *Weight) string {
	if w == nil || w.Value == nil {
		return format.NA
	}
	return format.Weight(*w.Value, w.Units)
}

func orNA(s string) string {
	if s == "" {
		return format.NA
	}
	return s
}
