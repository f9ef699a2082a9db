package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/grbod/dashboard/internal/dashboard"
	"github.com/grbod/dashboard/internal/format"
)

type jsonOutput struct {
	FetchedAt string            `json:"fetched_at"`
	Summary   jsonSummary       `json:"summary"`
	Tables    []dashboard.Table `json:"tables"`
}

type jsonSummary struct {
	FreightView dashboard.FreightViewSummary `json:"freightview"`
	ShipStation dashboard.ShipStationSummary `json:"shipstation"`
	Airtable    dashboard.AirtableSummary    `json:"airtable"`
	Combined    dashboard.CombinedSummary    `json:"combined"`
}

func writeJSON(w io.Writer, snap dashboard.Snapshot, summary dashboard.Summary, tables []dashboard.Table) error {
	out := jsonOutput{
		FetchedAt: snap.FetchedAt.Format("2006-01-02 15:04:05"),
		Summary: jsonSummary{
			FreightView: summary.FreightView,
			ShipStation: summary.ShipStation,
			Airtable:    summary.Airtable,
			Combined:    summary.Combined,
		},
		Tables: tables,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeHuman(w io.Writer, snap dashboard.Snapshot, summary dashboard.Summary, tables []dashboard.Table) error {
	fmt.Fprintln(w, "Unified Shipping Dashboard")
	fmt.Fprintf(w, "Last updated: %s\n\n", snap.FetchedAt.Format("2006-01-02 15:04:05"))

	writeSummary(w, summary)

	for _, table := range tables {
		fmt.Fprintf(w, "\n%s (%d)\n", table.Title, len(table.Rows))
		if len(table.Rows) == 0 {
			fmt.Fprintln(w, "  no data available")
			continue
		}
		writeTable(w, table)
	}
	return nil
}

func writeSummary(w io.Writer, summary dashboard.Summary) {
	fv := summary.FreightView
	fmt.Fprintf(w, "FreightView   [%s]  inbound: %d  outbound: %d  total cost: %s  avg $/lb: %.2f\n",
		statusIcon(fv.Status), fv.InboundCount, fv.OutboundCount, format.Money(fv.TotalCost), fv.AvgCostPerLb)

	ss := summary.ShipStation
	fmt.Fprintf(w, "ShipStation   [%s]  pending: %d  shipped: %d  order value: %s\n",
		statusIcon(ss.Status), ss.PendingOrders, ss.ShippedOrders, format.Money(ss.TotalOrderValue))
	for _, sc := range ss.Stores {
		fmt.Fprintf(w, "    %-20s %d\n", sc.Store, sc.Count)
	}

	at := summary.Airtable
	if !at.Configured {
		fmt.Fprintln(w, "Pickups       [not configured]")
	} else {
		fmt.Fprintf(w, "Pickups       [%s]  to schedule: %d  value: %s\n",
			statusIcon(at.Status), at.TotalPickups, format.Money(at.TotalValue))
		statuses := make([]string, 0, len(at.ByStatus))
		for status := range at.ByStatus {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)
		for _, status := range statuses {
			fmt.Fprintf(w, "    %-20s %d\n", status+":", at.ByStatus[status])
		}
	}

	fmt.Fprintf(w, "Combined      active shipments: %d  total value: %s\n",
		summary.Combined.TotalActiveShipments, format.Money(summary.Combined.TotalValue))
}

func writeTable(w io.Writer, table dashboard.Table) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func statusIcon(s dashboard.Status) string {
	if s == dashboard.StatusConnected {
		return "ok"
	}
	return "offline"
}
