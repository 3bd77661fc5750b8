package carrier

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/oboratav/yk-proxy/internal/domain"
)

// serviceNamespace is the dispatcher service's schema namespace.
const serviceNamespace = "http://yurticikargo.com.tr/ShippingOrderDispatcherServices"

const soapEnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

// requestEnvelope wraps exactly one operation call in a SOAP 1.1
// envelope.
type requestEnvelope struct {
	XMLName xml.Name    `xml:"soapenv:Envelope"`
	NSSoap  string      `xml:"xmlns:soapenv,attr"`
	NSSvc   string      `xml:"xmlns:ser,attr"`
	Body    requestBody `xml:"soapenv:Body"`
}

type requestBody struct {
	Create *createShipmentCall `xml:"ser:createShipment,omitempty"`
	Query  *queryShipmentCall  `xml:"ser:queryShipment,omitempty"`
}

func newEnvelope() requestEnvelope {
	return requestEnvelope{
		NSSoap: soapEnvelopeNamespace,
		NSSvc:  serviceNamespace,
	}
}

type createShipmentCall struct {
	Username string          `xml:"wsUserName"`
	Password string          `xml:"wsPassword"`
	Language string          `xml:"userLanguage"`
	Orders   []shippingOrder `xml:"ShippingOrderVO"`
}

type queryShipmentCall struct {
	Username          string   `xml:"wsUserName"`
	Password          string   `xml:"wsPassword"`
	Language          string   `xml:"wsLanguage"`
	Keys              []string `xml:"keys"`
	KeyType           int      `xml:"keyType"`
	AddHistoricalData bool     `xml:"addHistoricalData"`
	OnlyTracking      bool     `xml:"onlyTracking"`
}

// shippingOrder serializes one mapped field set. Present fields become
// elements in field-set order; absent fields are omitted entirely, which
// is how the carrier distinguishes "not supplied" from "empty".
type shippingOrder struct {
	fields *domain.FieldSet
}

func (o shippingOrder) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, name := range o.fields.Names() {
		f := o.fields.Get(name)
		if !f.Present {
			continue
		}
		el := xml.StartElement{Name: xml.Name{Local: name}}
		if err := e.EncodeElement(f.Value, el); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// soapFault is the error payload of a faulted call.
type soapFault struct {
	Code   string `xml:"faultcode"`
	Reason string `xml:"faultstring"`
}

func (f *soapFault) Error() string {
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.Reason)
}

// createResultXML mirrors the ShippingOrderResultVO response structure.
// count rides as text because the carrier omits it on some failure
// responses.
type createResultXML struct {
	OutFlag   string           `xml:"outFlag"`
	OutResult string           `xml:"outResult"`
	Count     string           `xml:"count"`
	JobID     string           `xml:"jobId"`
	Details   []orderDetailXML `xml:"shippingOrderDetailVO"`
}

type orderDetailXML struct {
	CargoKey   string `xml:"cargoKey"`
	ErrCode    string `xml:"errCode"`
	ErrMessage string `xml:"errMessage"`
}

// queryResultXML mirrors the ShippingDeliveryVO response structure.
type queryResultXML struct {
	OutFlag   string         `xml:"outFlag"`
	OutResult string         `xml:"outResult"`
	ErrCode   string         `xml:"errCode"`
	Count     string         `xml:"count"`
	Details   []detailRecord `xml:"shippingDeliveryDetailVO"`
}

// detailRecord captures one shippingDeliveryDetailVO as element-name to
// text. Nested records flatten to their concatenated text; the gateway
// passes detail records through without interpreting them.
type detailRecord map[string]string

func (d *detailRecord) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	m := map[string]string{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var s string
			if err := dec.DecodeElement(&s, &t); err != nil {
				return err
			}
			m[t.Name.Local] = s
		case xml.EndElement:
			*d = m
			return nil
		}
	}
}

// decodeResponse scans a response document for the operation result and
// decodes it into v. JAX-WS services wrap the result in a "return"
// element; the bare VO element names are accepted as well. A SOAP fault
// decodes into an error instead.
func decodeResponse(body []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return errors.New("no result element in response")
		}
		if err != nil {
			return fmt.Errorf("scan response: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "Fault":
			var f soapFault
			if err := dec.DecodeElement(&f, &se); err != nil {
				return fmt.Errorf("decode fault: %w", err)
			}
			return &f
		case "return", "ShippingOrderResultVO", "ShippingDeliveryVO":
			if err := dec.DecodeElement(v, &se); err != nil {
				return fmt.Errorf("decode result: %w", err)
			}
			return nil
		}
	}
}

// optionalCode converts the carrier's nillable numeric error code. Empty
// or nil elements read as no error.
func optionalCode(s string) *int {
	if s == "" {
		return nil
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &code
}

// countOf tolerates missing or empty count elements.
func countOf(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
