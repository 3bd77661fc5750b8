package dto

import (
	"encoding/json"
	"fmt"
)

// Value is a scalar JSON field that records whether it was present in the
// request body. Callers send strings, numbers, or booleans interchangeably;
// all are carried in their literal form since the carrier consumes them as
// text. A missing or null field reads as not-ok, which downstream mapping
// turns into the absent marker.
type Value struct {
	raw string
	ok  bool
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v.raw, v.ok = s, true
		return nil
	}

	if len(b) > 0 && (b[0] == '{' || b[0] == '[') {
		return fmt.Errorf("expected scalar value, got %c", b[0])
	}

	// Numbers and booleans keep their literal representation.
	v.raw, v.ok = string(b), true
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.raw)
}

// String returns the literal value; empty for missing fields.
func (v Value) String() string {
	return v.raw
}

// Ok reports whether the field was present in the request.
func (v Value) Ok() bool {
	return v.ok
}

// FlatShipment is the request layout using the carrier's own field names
// at the top level. Unknown carrier fields (custProdId, orgGeoCode,
// privilegeOrder) are accepted here and passed through untouched.
type FlatShipment struct {
	CargoKey           Value `json:"cargoKey"`
	InvoiceKey         Value `json:"invoiceKey"`
	ReceiverCustName   Value `json:"receiverCustName"`
	ReceiverAddress    Value `json:"receiverAddress"`
	CityName           Value `json:"cityName"`
	TownName           Value `json:"townName"`
	ReceiverPhone1     Value `json:"receiverPhone1"`
	ReceiverPhone2     Value `json:"receiverPhone2"`
	ReceiverPhone3     Value `json:"receiverPhone3"`
	EmailAddress       Value `json:"emailAddress"`
	TaxOfficeID        Value `json:"taxOfficeId"`
	TaxNumber          Value `json:"taxNumber"`
	TaxOfficeName      Value `json:"taxOfficeName"`
	Desi               Value `json:"desi"`
	Kg                 Value `json:"kg"`
	CargoCount         Value `json:"cargoCount"`
	WaybillNo          Value `json:"waybillNo"`
	SpecialField1      Value `json:"specialField1"`
	SpecialField2      Value `json:"specialField2"`
	SpecialField3      Value `json:"specialField3"`
	TTInvoiceAmount    Value `json:"ttInvoiceAmount"`
	TTDocumentID       Value `json:"ttDocumentId"`
	TTCollectionType   Value `json:"ttCollectionType"`
	TTDocumentSaveType Value `json:"ttDocumentSaveType"`
	DCSelectedCredit   Value `json:"dcSelectedCredit"`
	DCCreditRule       Value `json:"dcCreditRule"`
	Description        Value `json:"description"`
	OrgReceiverCustID  Value `json:"orgReceiverCustId"`
	CustProdID         Value `json:"custProdId"`
	OrgGeoCode         Value `json:"orgGeoCode"`
	PrivilegeOrder     Value `json:"privilegeOrder"`
}

// FormattedAddress is the recipient block of the formatted layout.
type FormattedAddress struct {
	Name          Value    `json:"name"`
	Address       Value    `json:"address"`
	City          Value    `json:"city"`
	Town          Value    `json:"town"`
	Email         Value    `json:"email"`
	Phone         []string `json:"phone"`
	TaxOfficeID   Value    `json:"tax_office_id"`
	TaxNumber     Value    `json:"tax_number"`
	TaxOfficeName Value    `json:"tax_office_name"`
	CustomerID    Value    `json:"customer_id"`
}

// FormattedParcel carries the physical parcel attributes.
type FormattedParcel struct {
	Weight           Value `json:"weight"`
	VolumetricWeight Value `json:"volumetric_weight"`
	Count            Value `json:"count"`
}

// FormattedCOD carries the cash-on-delivery sub-fields.
type FormattedCOD struct {
	Amount           Value `json:"amount"`
	InvoiceNumber    Value `json:"invoice_number"`
	PaymentMethod    Value `json:"payment_method"`
	DocumentSaveType Value `json:"document_save_type"`
	Installments     Value `json:"installments"`
	Criteria         Value `json:"criteria"`
}

// FormattedShipment is the caller-friendly nested request layout.
// Free-form carrier metadata goes into Special, keyed by the names of the
// fixed special-field table.
type FormattedShipment struct {
	ID          Value             `json:"id"`
	InvoiceID   Value             `json:"invoice_id"`
	Waybill     Value             `json:"waybill"`
	Description Value             `json:"description"`
	ToAddress   FormattedAddress  `json:"to_address"`
	Parcel      FormattedParcel   `json:"parcel"`
	COD         FormattedCOD      `json:"cod"`
	Special     map[string]string `json:"special"`
}
