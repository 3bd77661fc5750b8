package carrier

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/oboratav/yk-proxy/internal/domain"
)

func TestShippingOrderMarshalOmitsAbsentFields(t *testing.T) {
	fs := domain.NewFieldSet()
	fs.Put("cargoKey", domain.Val("A1"))
	fs.Put("invoiceKey", domain.Absent)
	fs.Put("description", domain.Val(""))

	out, err := xml.Marshal(shippingOrder{fields: fs})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	doc := string(out)

	if !strings.Contains(doc, "<cargoKey>A1</cargoKey>") {
		t.Errorf("missing cargoKey element:\n%s", doc)
	}
	if strings.Contains(doc, "invoiceKey") {
		t.Errorf("absent field must be omitted entirely:\n%s", doc)
	}
	// An empty string still serializes, as an empty element.
	if !strings.Contains(doc, "<description></description>") {
		t.Errorf("present empty field must serialize:\n%s", doc)
	}
}

func TestShippingOrderMarshalPreservesFieldOrder(t *testing.T) {
	fs := domain.NewFieldSet()
	fs.Put("cargoKey", domain.Val("A1"))
	fs.Put("receiverCustName", domain.Val("Ayşe"))
	fs.Put("cityName", domain.Val("İstanbul"))

	out, err := xml.Marshal(shippingOrder{fields: fs})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	doc := string(out)

	if strings.Index(doc, "cargoKey") > strings.Index(doc, "receiverCustName") ||
		strings.Index(doc, "receiverCustName") > strings.Index(doc, "cityName") {
		t.Fatalf("elements out of order:\n%s", doc)
	}
}

func TestRequestEnvelopeCreate(t *testing.T) {
	fs := domain.NewFieldSet()
	fs.Put("cargoKey", domain.Val("A1"))

	env := newEnvelope()
	env.Body.Create = &createShipmentCall{
		Username: "user",
		Password: "pass",
		Language: "TR",
		Orders:   []shippingOrder{{fields: fs}},
	}

	out, err := xml.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		`xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"`,
		`xmlns:ser="` + serviceNamespace + `"`,
		"<ser:createShipment>",
		"<wsUserName>user</wsUserName>",
		"<userLanguage>TR</userLanguage>",
		"<ShippingOrderVO><cargoKey>A1</cargoKey></ShippingOrderVO>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("envelope is missing %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "queryShipment") {
		t.Errorf("create envelope must not carry a query call:\n%s", doc)
	}
}

const sampleCreateResponse = `<?xml version="1.0"?>
<S:Envelope xmlns:S="http://schemas.xmlsoap.org/soap/envelope/">
  <S:Body>
    <ns2:createShipmentResponse xmlns:ns2="http://yurticikargo.com.tr/ShippingOrderDispatcherServices">
      <ShippingOrderResultVO>
        <outFlag>0</outFlag>
        <outResult>İşlem Başarılı</outResult>
        <count>2</count>
        <jobId>900123</jobId>
        <shippingOrderDetailVO>
          <cargoKey>A1</cargoKey>
          <errCode xsi:nil="true" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"/>
        </shippingOrderDetailVO>
        <shippingOrderDetailVO>
          <cargoKey>B2</cargoKey>
          <errCode>60020</errCode>
          <errMessage>Belirtilen kargo anahtarı sistemde mevcut</errMessage>
        </shippingOrderDetailVO>
      </ShippingOrderResultVO>
    </ns2:createShipmentResponse>
  </S:Body>
</S:Envelope>`

func TestDecodeCreateResponse(t *testing.T) {
	var raw createResultXML
	if err := decodeResponse([]byte(sampleCreateResponse), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if raw.OutFlag != "0" || raw.JobID != "900123" || countOf(raw.Count) != 2 {
		t.Fatalf("header = %+v", raw)
	}
	if len(raw.Details) != 2 {
		t.Fatalf("details = %d, want 2", len(raw.Details))
	}
	if code := optionalCode(raw.Details[0].ErrCode); code != nil {
		t.Fatalf("first errCode = %v, want nil", *code)
	}
	if code := optionalCode(raw.Details[1].ErrCode); code == nil || *code != 60020 {
		t.Fatalf("second errCode = %v, want 60020", code)
	}
}

// JAX-WS deployments wrap the result VO in a "return" element.
const sampleQueryResponse = `<?xml version="1.0"?>
<S:Envelope xmlns:S="http://schemas.xmlsoap.org/soap/envelope/">
  <S:Body>
    <ns2:queryShipmentResponse xmlns:ns2="http://yurticikargo.com.tr/ShippingOrderDispatcherServices">
      <return>
        <outFlag>0</outFlag>
        <count>1</count>
        <shippingDeliveryDetailVO>
          <cargoKey>A1</cargoKey>
          <operationStatus>DLV</operationStatus>
          <shippingDeliveryItemDetailVO>
            <docNumber>123</docNumber>
          </shippingDeliveryItemDetailVO>
        </shippingDeliveryDetailVO>
      </return>
    </ns2:queryShipmentResponse>
  </S:Body>
</S:Envelope>`

func TestDecodeQueryResponse(t *testing.T) {
	var raw queryResultXML
	if err := decodeResponse([]byte(sampleQueryResponse), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if raw.OutFlag != "0" || countOf(raw.Count) != 1 {
		t.Fatalf("header = %+v", raw)
	}
	if len(raw.Details) != 1 {
		t.Fatalf("details = %d, want 1", len(raw.Details))
	}

	d := raw.Details[0]
	if d["cargoKey"] != "A1" || d["operationStatus"] != "DLV" {
		t.Fatalf("detail = %v", d)
	}
}

const sampleFaultResponse = `<?xml version="1.0"?>
<S:Envelope xmlns:S="http://schemas.xmlsoap.org/soap/envelope/">
  <S:Body>
    <S:Fault>
      <faultcode>S:Server</faultcode>
      <faultstring>Authentication failed</faultstring>
    </S:Fault>
  </S:Body>
</S:Envelope>`

func TestDecodeFaultResponse(t *testing.T) {
	var raw queryResultXML
	err := decodeResponse([]byte(sampleFaultResponse), &raw)

	var fault *soapFault
	if !errors.As(err, &fault) {
		t.Fatalf("err = %v (%T), want *soapFault", err, err)
	}
	if fault.Code != "S:Server" || fault.Reason != "Authentication failed" {
		t.Fatalf("fault = %+v", fault)
	}
}

func TestDecodeResponseWithoutResult(t *testing.T) {
	var raw queryResultXML
	if err := decodeResponse([]byte("<nothing/>"), &raw); err == nil {
		t.Fatal("expected an error for a response without a result element")
	}
}

func TestSoapAddress(t *testing.T) {
	const doc = `<definitions xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/">
	  <service>
	    <port>
	      <soap:address location="http://webservices.yurticikargo.com:8080/KOPSWebServices/ShippingOrderDispatcherServices"/>
	    </port>
	  </service>
	</definitions>`

	want := "http://webservices.yurticikargo.com:8080/KOPSWebServices/ShippingOrderDispatcherServices"
	if got := soapAddress(doc); got != want {
		t.Fatalf("soapAddress = %q, want %q", got, want)
	}
	if got := soapAddress("<definitions/>"); got != "" {
		t.Fatalf("soapAddress on empty description = %q, want empty", got)
	}
}

func TestOptionalCode(t *testing.T) {
	if optionalCode("") != nil {
		t.Error("empty string should read as no code")
	}
	if optionalCode("junk") != nil {
		t.Error("non-numeric text should read as no code")
	}
	if code := optionalCode("80859"); code == nil || *code != 80859 {
		t.Errorf("optionalCode(80859) = %v", code)
	}
}

func TestCountOf(t *testing.T) {
	if got := countOf(""); got != 0 {
		t.Errorf("countOf(\"\") = %d, want 0", got)
	}
	if got := countOf("3"); got != 3 {
		t.Errorf("countOf(3) = %d, want 3", got)
	}
}
