package services

import "github.com/oboratav/yk-proxy/internal/ports"

// MergeQueryResults combines a shipment-id lookup with an invoice-id
// lookup into one logical result set. A single result passes through
// unmodified; with both present, the shipment-id result is the base,
// counts are summed, and detail lists concatenate in (shipment-id,
// invoice-id) order. The handler guarantees at least one identifier kind
// was queried before any carrier call is made.
func MergeQueryResults(byShipmentID, byInvoiceID *ports.QueryResult) ports.QueryResult {
	switch {
	case byShipmentID == nil && byInvoiceID == nil:
		return ports.QueryResult{}
	case byShipmentID == nil:
		return *byInvoiceID
	case byInvoiceID == nil:
		return *byShipmentID
	}

	merged := *byShipmentID
	merged.Count += byInvoiceID.Count

	details := make([]map[string]string, 0, len(byShipmentID.Details)+len(byInvoiceID.Details))
	details = append(details, byShipmentID.Details...)
	details = append(details, byInvoiceID.Details...)
	merged.Details = details

	return merged
}
