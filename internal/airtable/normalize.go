package airtable

import (
	"sort"
	"strconv"

	"github.com/grbod/dashboard/internal/format"
)

// missingDateKey sorts records without a ready date after everything else.
const missingDateKey = "9999-12-31"

// PickupRow is a display-ready procurement record. Monetary fields are
// already formatted display strings here, not raw numbers.
type PickupRow struct {
	RecordID     string
	Vendor       string
	PONumber     string
	Status       string
	ReadyDate    string
	Product      string
	Quantity     string
	UnitCost     string
	TotalCost    string
	Carrier      string
	Tracking     string
	Notes        string
	RawReadyDate string
}

// PickupRows normalizes raw records into display rows, sorted ascending by
// the raw ready date with missing dates last. Field extraction tries each
// historical field name in priority order.
func PickupRows(records []Record) []PickupRow {
	rows := make([]PickupRow, 0, len(records))

	for _, record := range records {
		fields := record.Fields
		if fields == nil {
			fields = map[string]any{}
		}

		row := PickupRow{
			RecordID:  orNA(record.ID),
			Vendor:    stringField(fields, "Vendor"),
			PONumber:  stringField(fields, "PO Number", "PO #"),
			Status:    stringField(fields, "Status"),
			Product:   stringField(fields, "Product", "Description"),
			Quantity:  stringField(fields, "Quantity"),
			UnitCost:  moneyField(fields, "Unit Cost"),
			TotalCost: moneyField(fields, "Total Cost", "Total"),
			Carrier:   stringField(fields, "Carrier"),
			Tracking:  stringField(fields, "Tracking", "Tracking Number"),
			Notes:     stringOr(fields, "", "Notes"),
		}

		raw := stringField(fields, "Vendor Ready-Date")
		row.ReadyDate = raw
		if raw != format.NA {
			formatted := format.Date(raw)
			row.ReadyDate = formatted
			if formatted != raw {
				row.RawReadyDate = raw
			}
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return sortKey(rows[i]) < sortKey(rows[j])
	})

	return rows
}

// PickupSummary aggregates raw records: counts by status, total value over
// numeric costs only, and earliest/latest ready dates by plain string sort
// (ISO dates sort lexicographically in calendar order).
type PickupSummary struct {
	TotalPickups   int
	ByStatus       map[string]int
	TotalValue     float64
	EarliestPickup *string
	LatestPickup   *string
}

func Summarize(records []Record) PickupSummary {
	summary := PickupSummary{ByStatus: map[string]int{}}
	if len(records) == 0 {
		return summary
	}

	summary.TotalPickups = len(records)
	var dates []string

	for _, record := range records {
		fields := record.Fields
		if fields == nil {
			continue
		}

		status := stringOr(fields, "Unknown", "Status")
		summary.ByStatus[status]++

		if v, ok := numberField(fields, "Total Cost", "Total"); ok {
			summary.TotalValue += v
		}

		if d, ok := fields["Vendor Ready-Date"].(string); ok && d != "" {
			dates = append(dates, d)
		}
	}

	if len(dates) > 0 {
		sort.Strings(dates)
		earliest, latest := dates[0], dates[len(dates)-1]
		summary.EarliestPickup = &earliest
		summary.LatestPickup = &latest
	}

	return summary
}

func sortKey(row PickupRow) string {
	if row.RawReadyDate == "" {
		return missingDateKey
	}
	return row.RawReadyDate
}

// stringField returns the first present alternate field rendered as a
// string, defaulting to the N/A sentinel.
func stringField(fields map[string]any, keys ...string) string {
	return stringOr(fields, format.NA, keys...)
}

func stringOr(fields map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			return strconv.Itoa(t)
		case bool:
			return strconv.FormatBool(t)
		}
	}
	return fallback
}

// numberField returns the first alternate field holding a numeric value.
func numberField(fields map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t, true
		case int:
			return float64(t), true
		}
	}
	return 0, false
}

// moneyField formats the first numeric alternate as currency; absent,
// non-numeric and non-positive values become the sentinel.
func moneyField(fields map[string]any, keys ...string) string {
	v, ok := numberField(fields, keys...)
	if !ok {
		return format.NA
	}
	return format.Money(v)
}

func orNA(s string) string {
	if s == "" {
		return format.NA
	}
	return s
}
