package ports

import (
	"context"

	"github.com/oboratav/yk-proxy/internal/domain"
)

// Credentials identify the caller to the carrier. They arrive per-request
// from the HTTP Basic header and are never stored.
type Credentials struct {
	Username string
	Password string
}

// KeyType selects which identifier kind a query runs against. The numeric
// values are the carrier's own enumerants.
type KeyType int

const (
	KeyTypeShipmentID KeyType = 0
	KeyTypeInvoiceID  KeyType = 1
)

// ShipmentResult is one per-item result from a create batch. ErrCode is
// nil on success.
type ShipmentResult struct {
	CargoKey   string
	ErrCode    *int
	ErrMessage string
}

// CreateResult is the carrier's batch response to a create call.
type CreateResult struct {
	OutFlag   string
	OutResult string
	Count     int
	JobID     string
	Shipments []ShipmentResult
}

// QueryResult is the carrier's response to a single lookup. Details are
// the shippingDeliveryDetailVO records, flattened to element text.
type QueryResult struct {
	OutFlag   string
	OutResult string
	ErrCode   *int
	Count     int
	Details   []map[string]string
}

// Port: the carrier's shipping order dispatcher operations. One HTTP
// request performs at most two calls, serially; implementations must be
// safe for concurrent use across requests.
type CarrierClient interface {
	// Submit a batch of mapped shipment orders.
	CreateShipment(ctx context.Context, creds Credentials, language string, orders []*domain.FieldSet) (CreateResult, error)

	// Look up shipments by shipment-id or invoice-id keys.
	QueryShipment(ctx context.Context, creds Credentials, language string, keys []string, keyType KeyType, addHistoricalData bool, onlyTracking bool) (QueryResult, error)
}
