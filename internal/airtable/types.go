package airtable

// Record is one row of the procurement table: an opaque id plus a
// key-value field map whose keys changed names over the table's history.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}
