package carrier

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/oboratav/yk-proxy/internal/domain"
	"github.com/oboratav/yk-proxy/internal/platform/obs"
	"github.com/oboratav/yk-proxy/internal/ports"
)

// Service description URLs published by the carrier.
const (
	TestWSDLURL = "http://testwebservices.yurticikargo.com:9090/KOPSWebServices/ShippingOrderDispatcherServices?wsdl"
	ProdWSDLURL = "http://webservices.yurticikargo.com:8080/KOPSWebServices/ShippingOrderDispatcherServices?wsdl"
)

// SOAPClient implements ports.CarrierClient against the carrier's
// ShippingOrderDispatcherServices endpoint.
//
// It coordinates:
//   - Service description retrieval through an injected cache
//   - Envelope encoding with absent-field elision
//   - External calls with retry/backoff
//
// The client is safe for concurrent use.
type SOAPClient struct {
	session  *http.Client
	endpoint string
	log      *zap.Logger
}

// NewSOAPClient resolves the service endpoint from its description URL
// and returns a ready client. The description is looked up through the
// injected cache first; when neither the cache nor the network yields a
// usable document, the endpoint falls back to the description URL with
// its query stripped.
func NewSOAPClient(ctx context.Context, wsdlURL string, descriptions ports.DescriptionCache, log *zap.Logger) (*SOAPClient, error) {
	if wsdlURL == "" {
		return nil, errors.New("carrier: service description url is empty")
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := &SOAPClient{
		session: &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}

	endpoint, err := c.resolveEndpoint(ctx, wsdlURL, descriptions)
	if err != nil {
		return nil, fmt.Errorf("carrier: resolve service endpoint: %w", err)
	}
	c.endpoint = endpoint

	return c, nil
}

// Endpoint returns the resolved service endpoint.
func (c *SOAPClient) Endpoint() string {
	return c.endpoint
}

func (c *SOAPClient) resolveEndpoint(ctx context.Context, wsdlURL string, descriptions ports.DescriptionCache) (string, error) {
	fallback := strings.TrimSuffix(wsdlURL, "?wsdl")

	doc, err := c.serviceDescription(ctx, wsdlURL, descriptions)
	if err != nil {
		c.log.Warn("service description unavailable, using fallback endpoint",
			zap.String("url", wsdlURL), zap.Error(err))
		return fallback, nil
	}

	endpoint := soapAddress(doc)
	if endpoint == "" {
		c.log.Warn("service description has no soap address, using fallback endpoint",
			zap.String("url", wsdlURL))
		return fallback, nil
	}

	return endpoint, nil
}

func (c *SOAPClient) serviceDescription(ctx context.Context, wsdlURL string, descriptions ports.DescriptionCache) (string, error) {
	if descriptions != nil {
		doc, ok, err := descriptions.Get(ctx, wsdlURL)
		if err != nil {
			c.log.Warn("description cache read failed", zap.Error(err))
		} else if ok {
			return doc, nil
		}
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, wsdlURL, nil)
	})
	if err != nil {
		return "", fmt.Errorf("fetch service description: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read service description: %w", err)
	}
	doc := string(b)

	if descriptions != nil {
		if err := descriptions.Put(ctx, wsdlURL, doc); err != nil {
			c.log.Warn("description cache write failed", zap.Error(err))
		}
	}

	return doc, nil
}

// soapAddress extracts the port address location from a service
// description document.
func soapAddress(doc string) string {
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "address" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local == "location" {
				return attr.Value
			}
		}
	}
}

// CreateShipment submits a batch of mapped orders in a single call.
func (c *SOAPClient) CreateShipment(
	ctx context.Context,
	creds ports.Credentials,
	language string,
	orders []*domain.FieldSet,
) (_ ports.CreateResult, err error) {
	defer obs.Time(ctx, "carrier.createShipment")(&err)

	env := newEnvelope()
	call := &createShipmentCall{
		Username: creds.Username,
		Password: creds.Password,
		Language: language,
		Orders:   make([]shippingOrder, 0, len(orders)),
	}
	for _, fs := range orders {
		call.Orders = append(call.Orders, shippingOrder{fields: fs})
	}
	env.Body.Create = call

	body, err := c.call(ctx, env)
	if err != nil {
		return ports.CreateResult{}, fmt.Errorf("createShipment: %w", err)
	}

	var raw createResultXML
	if err := decodeResponse(body, &raw); err != nil {
		return ports.CreateResult{}, fmt.Errorf("createShipment: %w", err)
	}

	res := ports.CreateResult{
		OutFlag:   raw.OutFlag,
		OutResult: raw.OutResult,
		Count:     countOf(raw.Count),
		JobID:     raw.JobID,
		Shipments: make([]ports.ShipmentResult, 0, len(raw.Details)),
	}
	for _, d := range raw.Details {
		res.Shipments = append(res.Shipments, ports.ShipmentResult{
			CargoKey:   d.CargoKey,
			ErrCode:    optionalCode(d.ErrCode),
			ErrMessage: d.ErrMessage,
		})
	}

	return res, nil
}

// QueryShipment looks up shipments by key.
func (c *SOAPClient) QueryShipment(
	ctx context.Context,
	creds ports.Credentials,
	language string,
	keys []string,
	keyType ports.KeyType,
	addHistoricalData bool,
	onlyTracking bool,
) (_ ports.QueryResult, err error) {
	defer obs.Time(ctx, "carrier.queryShipment")(&err)

	env := newEnvelope()
	env.Body.Query = &queryShipmentCall{
		Username:          creds.Username,
		Password:          creds.Password,
		Language:          language,
		Keys:              keys,
		KeyType:           int(keyType),
		AddHistoricalData: addHistoricalData,
		OnlyTracking:      onlyTracking,
	}

	body, err := c.call(ctx, env)
	if err != nil {
		return ports.QueryResult{}, fmt.Errorf("queryShipment: %w", err)
	}

	var raw queryResultXML
	if err := decodeResponse(body, &raw); err != nil {
		return ports.QueryResult{}, fmt.Errorf("queryShipment: %w", err)
	}

	details := make([]map[string]string, 0, len(raw.Details))
	for _, d := range raw.Details {
		details = append(details, map[string]string(d))
	}

	return ports.QueryResult{
		OutFlag:   raw.OutFlag,
		OutResult: raw.OutResult,
		ErrCode:   optionalCode(raw.ErrCode),
		Count:     countOf(raw.Count),
		Details:   details,
	}, nil
}

// call marshals one envelope, posts it, and returns the response
// document.
func (c *SOAPClient) call(ctx context.Context, env requestEnvelope) ([]byte, error) {
	payload, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	payload = append([]byte(xml.Header), payload...)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, c.endpoint, payload)
	})
	if err != nil {
		return nil, fmt.Errorf("post envelope: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return body, nil
}
