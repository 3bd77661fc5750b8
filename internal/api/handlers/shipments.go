package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/oboratav/yk-proxy/internal/api/dto"
	"github.com/oboratav/yk-proxy/internal/api/reqctx"
	"github.com/oboratav/yk-proxy/internal/domain"
	"github.com/oboratav/yk-proxy/internal/ports"
	"github.com/oboratav/yk-proxy/internal/services"
)

// userLanguage is fixed for every carrier call.
const userLanguage = "TR"

// outFlagSuccess is the carrier's overall success flag.
const outFlagSuccess = "0"

// ShipmentHandler exposes the shipment gateway operations. One inbound
// request maps to one (or, for combined queries, two) serial carrier
// calls against whichever deployment the middleware selected.
type ShipmentHandler struct {
	Test   ports.CarrierClient
	Prod   ports.CarrierClient
	Labels *services.LabelGenerator
}

// Handle dispatches on method: POST creates a batch, GET queries,
// DELETE (cancel) is not implemented in the carrier integration.
func (h *ShipmentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.query(w, r)
	case http.MethodDelete:
		writeError(w, r, http.StatusNotImplemented, "cancel shipment is not implemented")
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *ShipmentHandler) client(r *http.Request) ports.CarrierClient {
	if reqctx.EnvironmentFrom(r.Context()) == reqctx.EnvironmentTest {
		return h.Test
	}
	return h.Prod
}

// create translates the submitted batch into a carrier create call and
// reconciles the per-item results.
func (h *ShipmentHandler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creds, ok := reqctx.CredentialsFrom(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "the provided credentials are not valid")
		return
	}
	shape := reqctx.ShapeFrom(ctx)

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	var body json.RawMessage
	if err := dec.Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	records, err := recordsAsList(body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "body must be a shipment object or a list of shipment objects")
		return
	}

	orders := make([]*domain.FieldSet, 0, len(records))
	for i, raw := range records {
		fs, err := services.MapShipment(raw, shape)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("shipment %d: invalid record", i))
			return
		}
		orders = append(orders, fs)
	}

	res, err := h.client(r).CreateShipment(ctx, creds, userLanguage, orders)
	if err != nil {
		zap.L().Error("create shipment call failed", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "carrier call failed")
		return
	}

	// A failed batch is surfaced verbatim; there is nothing to partition.
	if res.OutFlag != outFlagSuccess {
		writeJSON(w, r, http.StatusInternalServerError, map[string]any{
			"outFlag":   res.OutFlag,
			"outResult": res.OutResult,
			"count":     res.Count,
			"jobId":     res.JobID,
		})
		return
	}

	batch, err := services.Reconcile(orders, res, h.Labels)
	if err != nil {
		if errors.Is(err, services.ErrKeyMismatch) {
			zap.L().Error("carrier results inconsistent with submission", zap.Error(err))
			writeError(w, r, http.StatusBadGateway, "carrier results do not match submitted shipments")
			return
		}
		zap.L().Error("reconcile failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CreateShipmentResponse{
		OutFlag:    batch.OutFlag,
		Count:      batch.Count,
		JobID:      batch.JobID,
		Successful: batch.Successful,
		Failed:     batch.Failed,
	})
}

// query looks shipments up by shipment-id and/or invoice-id and merges
// the results when both identifier kinds were supplied.
func (h *ShipmentHandler) query(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creds, ok := reqctx.CredentialsFrom(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "the provided credentials are not valid")
		return
	}

	q := r.URL.Query()
	shipmentIDs := listParam(q["shipment_id"])
	invoiceIDs := listParam(q["invoice_id"])
	addHistorical := boolParam(q.Get("add_historical_data"), true)
	trackingOnly := boolParam(q.Get("tracking_url_only"), false)

	if len(shipmentIDs) == 0 && len(invoiceIDs) == 0 {
		writeError(w, r, http.StatusBadRequest, "no identifier was provided")
		return
	}

	client := h.client(r)

	var byShipmentID, byInvoiceID *ports.QueryResult

	if len(shipmentIDs) > 0 {
		res, err := client.QueryShipment(ctx, creds, userLanguage, shipmentIDs, ports.KeyTypeShipmentID, addHistorical, trackingOnly)
		if err != nil {
			zap.L().Error("query by shipment id failed", zap.Error(err))
			writeError(w, r, http.StatusBadGateway, "carrier call failed")
			return
		}
		if res.OutFlag != outFlagSuccess {
			writeQueryFailure(w, r, res)
			return
		}
		byShipmentID = &res
	}

	if len(invoiceIDs) > 0 {
		res, err := client.QueryShipment(ctx, creds, userLanguage, invoiceIDs, ports.KeyTypeInvoiceID, addHistorical, trackingOnly)
		if err != nil {
			zap.L().Error("query by invoice id failed", zap.Error(err))
			writeError(w, r, http.StatusBadGateway, "carrier call failed")
			return
		}
		if res.OutFlag != outFlagSuccess {
			writeQueryFailure(w, r, res)
			return
		}
		byInvoiceID = &res
	}

	merged := services.MergeQueryResults(byShipmentID, byInvoiceID)

	writeJSON(w, r, http.StatusOK, dto.QueryShipmentResponse{
		OutFlag:   merged.OutFlag,
		OutResult: merged.OutResult,
		Count:     merged.Count,
		Details:   merged.Details,
	})
}

// writeQueryFailure surfaces a non-success lookup explicitly. A
// recognized carrier error code selects the documented status and
// message; anything else is a bad gateway with the carrier's own payload.
func writeQueryFailure(w http.ResponseWriter, r *http.Request, res ports.QueryResult) {
	body := map[string]any{
		"outFlag":   res.OutFlag,
		"outResult": res.OutResult,
	}

	if res.ErrCode != nil {
		body["errCode"] = *res.ErrCode
		if e, ok := domain.LookupCarrierError(*res.ErrCode); ok {
			body["errMessage"] = e.Message
			writeJSON(w, r, e.HTTPStatus, body)
			return
		}
	}

	writeJSON(w, r, http.StatusBadGateway, body)
}

// recordsAsList normalizes the accepted body forms: a single shipment
// object or a list of shipment objects always become a list.
func recordsAsList(body json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty body")
	}

	if trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	if trimmed[0] != '{' {
		return nil, errors.New("body is not an object or list")
	}

	return []json.RawMessage{trimmed}, nil
}

// listParam accepts both repeated parameters and comma-separated values.
func listParam(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func boolParam(value string, fallback bool) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
