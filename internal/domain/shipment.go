package domain

// Shape selects which of the two accepted request layouts a shipment
// record uses. It is resolved once per request from the "formatted" query
// parameter and threaded through mapping.
type Shape int

const (
	// ShapeFlat uses the carrier's own field names at the top level.
	ShapeFlat Shape = iota
	// ShapeFormatted uses caller-friendly nested paths such as
	// to_address.name.
	ShapeFormatted
)

// Carrier field names for the create-shipment operation
// (ShippingOrderVO). Declared in the carrier's schema order.
const (
	FieldCargoKey           = "cargoKey"
	FieldInvoiceKey         = "invoiceKey"
	FieldReceiverCustName   = "receiverCustName"
	FieldReceiverAddress    = "receiverAddress"
	FieldCityName           = "cityName"
	FieldTownName           = "townName"
	FieldReceiverPhone1     = "receiverPhone1"
	FieldReceiverPhone2     = "receiverPhone2"
	FieldReceiverPhone3     = "receiverPhone3"
	FieldEmailAddress       = "emailAddress"
	FieldTaxOfficeID        = "taxOfficeId"
	FieldTaxNumber          = "taxNumber"
	FieldTaxOfficeName      = "taxOfficeName"
	FieldDesi               = "desi"
	FieldKg                 = "kg"
	FieldCargoCount         = "cargoCount"
	FieldWaybillNo          = "waybillNo"
	FieldSpecialField1      = "specialField1"
	FieldSpecialField2      = "specialField2"
	FieldSpecialField3      = "specialField3"
	FieldTTInvoiceAmount    = "ttInvoiceAmount"
	FieldTTDocumentID       = "ttDocumentId"
	FieldTTCollectionType   = "ttCollectionType"
	FieldTTDocumentSaveType = "ttDocumentSaveType"
	FieldDCSelectedCredit   = "dcSelectedCredit"
	FieldDCCreditRule       = "dcCreditRule"
	FieldDescription        = "description"
	FieldOrgReceiverCustID  = "orgReceiverCustId"
	FieldCustProdID         = "custProdId"
	FieldOrgGeoCode         = "orgGeoCode"
	FieldPrivilegeOrder     = "privilegeOrder"
)
