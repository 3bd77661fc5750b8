package domain

import "net/http"

// CarrierError describes one carrier-side validation or lookup failure
// code, with the HTTP status it maps to and operator-facing messages in
// both languages the carrier documents.
type CarrierError struct {
	HTTPStatus int
	Message    string
	MessageTR  string
}

// Carrier error codes for the create and query operations.
var carrierErrors = map[int]CarrierError{
	936: {
		http.StatusTeapot,
		"Unexpected error—please contact Yurtiçi Kargo",
		"Beklenmeyen bir hata oluştu. Yurtiçi Kargo ile irtibata geçiniz",
	},
	80859: {
		http.StatusNotFound,
		"Shipment ID not found",
		"Kargo anahtarı bulunamadı",
	},
	82500: {
		http.StatusNotAcceptable,
		"Shipment ID too long",
		"Kargo anahtarı belirtilen uzunluktan fazla",
	},
	60020: {
		http.StatusConflict,
		"A shipment with this shipment ID already exists",
		"Belirtilen kargo anahtarı sistemde mevcut",
	},
	80057: {
		http.StatusNotFound,
		"Job ID not found",
		"Yurtiçi Kargo talep kodu bulunamadı",
	},
	60017: {
		http.StatusNotFound,
		"Invoice ID not found",
		"Fatura anahtarı bulunamadı",
	},
	82501: {
		http.StatusNotAcceptable,
		"Invoice ID too long",
		"Fatura anahtarı belirtilen uzunluktan fazla",
	},
	60018: {
		http.StatusNotAcceptable,
		"Recipient name not provided",
		"Alıcı adı bulunamadı",
	},
	82503: {
		http.StatusNotAcceptable,
		"Recipient name too long",
		"Alıcı adı belirtilen uzunluktan fazla",
	},
	60019: {
		http.StatusNotAcceptable,
		"Recipient address not provided",
		"Alıcı adresi bulunamadı",
	},
	82502: {
		http.StatusNotAcceptable,
		"Recipient address too long",
		"Alıcı adresi belirtilen uzunluktan fazla",
	},
	82505: {
		http.StatusNotAcceptable,
		"COD – Collection amount not provided",
		"Tahsilatlı Teslimat – Ödeme Tutarı bulunamadı",
	},
	82506: {
		http.StatusNotAcceptable,
		"COD - Collection amount too big",
		"Tahsilatlı Teslimat – Ödeme Tutarı belirtilen uzunluktan fazla",
	},
	82507: {
		http.StatusNotAcceptable,
		"COD - Invoice number not provided",
		"Tahsilatlı Teslimat – Fatura No. bulunamadı",
	},
	82508: {
		http.StatusNotAcceptable,
		"COD - Invoice number too long",
		"Tahsilatlı Teslimat – Fatura No. belirtilen uzunluktan fazla",
	},
	82509: {
		http.StatusNotAcceptable,
		"COD - Pay over time - Installments not provided",
		"Tahsilatlı Teslimat – Müşteri taksit seçimi bulunamadı",
	},
	82510: {
		http.StatusNotAcceptable,
		"COD - Pay over time - Too many installments",
		"Tahsilatlı Teslimat – Müşteri taksit seçimi belirtilen uzunluktan fazla",
	},
	82511: {
		http.StatusNotAcceptable,
		"COD - Pay over time - Criteria not provided",
		"Tahsilatlı Teslimat – Taksit Uygulama Kriteri bulunamadı",
	},
	82512: {
		http.StatusNotAcceptable,
		"COD - Your contract does not permit the payment method specified",
		"Tahsilatlı Teslimat – Müşteri Sözleşmesinde tanımlı ödeme tipi ile gönderdiğiniz ödeme tipi uyuşmamaktadır",
	},
	82513: {
		http.StatusNotAcceptable,
		"COD - Invalid payment method",
		"Hatalı ödeme tipi",
	},
	82514: {
		http.StatusNotAcceptable,
		"COD - Invalid invoice preference",
		"Hatalı fatura tipi",
	},
	82515: {
		http.StatusNotAcceptable,
		"Invalid recipient e-mail address",
		"Hatalı e-mail adresi",
	},
	82516: {
		http.StatusNotAcceptable,
		"Invalid recipient phone number",
		"Hatalı telefon bilgisi",
	},
	82517: {
		http.StatusNotAcceptable,
		"Invalid formatting",
		"Hatalı format bilgisi, parametreye ait değer belirtilen formatta olmalıdır",
	},
	82518: {
		http.StatusNotAcceptable,
		"COD - Pay over time - Invalid criteria",
		"Tahsilatlı Teslimat – Taksit uygulama kriteri parametresi hatalı",
	},
}

// LookupCarrierError resolves a carrier error code against the documented
// taxonomy. The second return value reports whether the code is known.
func LookupCarrierError(code int) (CarrierError, bool) {
	e, ok := carrierErrors[code]
	return e, ok
}

// COD payment method enumerants documented by the carrier.
const (
	CODPaymentMethodCash       = 0
	CODPaymentMethodCreditCard = 1
)
