package dto

// CreateShipmentResponse is the 200 body for a create batch: the carrier's
// overall flag, count, and job id, plus the submitted items partitioned by
// per-item outcome. Successful items carry a rendered label; failed items
// carry the carrier's errCode and errMessage.
type CreateShipmentResponse struct {
	OutFlag    string           `json:"outFlag"`
	Count      int              `json:"count"`
	JobID      string           `json:"jobId"`
	Successful []map[string]any `json:"successful"`
	Failed     []map[string]any `json:"failed"`
}

// QueryShipmentResponse is the 200 body for a shipment lookup, merged
// across identifier kinds when both were queried.
type QueryShipmentResponse struct {
	OutFlag   string              `json:"outFlag"`
	OutResult string              `json:"outResult,omitempty"`
	Count     int                 `json:"count"`
	Details   []map[string]string `json:"shippingDeliveryDetailVO"`
}
