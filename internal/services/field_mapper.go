package services

import (
	"encoding/json"
	"fmt"

	"github.com/oboratav/yk-proxy/internal/api/dto"
	"github.com/oboratav/yk-proxy/internal/domain"
)

// fieldSpec binds one carrier field name to its source accessor in each
// of the two accepted request shapes. A nil accessor means the shape
// never populates the field.
type fieldSpec struct {
	name      string
	flat      func(*dto.FlatShipment) domain.Field
	formatted func(*dto.FormattedShipment) domain.Field
}

func fieldOf(v dto.Value) domain.Field {
	if !v.Ok() {
		return domain.Absent
	}
	return domain.Val(v.String())
}

// createShipmentFields is the full mapping table for the carrier's
// create-shipment operation, in the carrier's schema order. custProdId,
// orgGeoCode, and privilegeOrder are deprecated carrier fields: they pass
// through in flat shape only and are never populated from formatted
// requests.
var createShipmentFields = []fieldSpec{
	{
		name:      domain.FieldCargoKey,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.CargoKey) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ID) },
	},
	{
		name:      domain.FieldInvoiceKey,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.InvoiceKey) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.InvoiceID) },
	},
	{
		name:      domain.FieldReceiverCustName,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.ReceiverCustName) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ToAddress.Name) },
	},
	{
		name:      domain.FieldReceiverAddress,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.ReceiverAddress) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ToAddress.Address) },
	},
	{
		name:      domain.FieldCityName,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.CityName) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ToAddress.City) },
	},
	{
		name:      domain.FieldTownName,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.TownName) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ToAddress.Town) },
	},
	{
		name: domain.FieldReceiverPhone1,
		flat: func(s *dto.FlatShipment) domain.Field {
			return UnpackFlatPhones(s.ReceiverPhone1, s.ReceiverPhone2, s.ReceiverPhone3)[0]
		},
		formatted: func(s *dto.FormattedShipment) domain.Field { return UnpackPhones(s.ToAddress.Phone)[0] },
	},
	{
		name: domain.FieldReceiverPhone2,
		flat: func(s *dto.FlatShipment) domain.Field {
			return UnpackFlatPhones(s.ReceiverPhone1, s.ReceiverPhone2, s.ReceiverPhone3)[1]
		},
		formatted: func(s *dto.FormattedShipment) domain.Field { return UnpackPhones(s.ToAddress.Phone)[1] },
	},
	{
		name: domain.FieldReceiverPhone3,
		flat: func(s *dto.FlatShipment) domain.Field {
			return UnpackFlatPhones(s.ReceiverPhone1, s.ReceiverPhone2, s.ReceiverPhone3)[2]
		},
		formatted: func(s *dto.FormattedShipment) domain.Field { return UnpackPhones(s.ToAddress.Phone)[2] },
	},
	{
		name:      domain.FieldEmailAddress,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.EmailAddress) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ToAddress.Email) },
	},
	{
		name:      domain.FieldTaxOfficeID,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.TaxOfficeID) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ToAddress.TaxOfficeID) },
	},
	{
		name:      domain.FieldTaxNumber,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.TaxNumber) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ToAddress.TaxNumber) },
	},
	{
		name:      domain.FieldTaxOfficeName,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.TaxOfficeName) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ToAddress.TaxOfficeName) },
	},
	{
		name:      domain.FieldDesi,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.Desi) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.Parcel.VolumetricWeight) },
	},
	{
		name:      domain.FieldKg,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.Kg) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.Parcel.Weight) },
	},
	{
		name:      domain.FieldCargoCount,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.CargoCount) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.Parcel.Count) },
	},
	{
		name:      domain.FieldWaybillNo,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.WaybillNo) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.Waybill) },
	},
	{
		name:      domain.FieldSpecialField1,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.SpecialField1) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return EncodeSpecialFields(s.Special) },
	},
	{
		name: domain.FieldSpecialField2,
		flat: func(s *dto.FlatShipment) domain.Field { return fieldOf(s.SpecialField2) },
	},
	{
		name: domain.FieldSpecialField3,
		flat: func(s *dto.FlatShipment) domain.Field { return fieldOf(s.SpecialField3) },
	},
	{
		name:      domain.FieldTTInvoiceAmount,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.TTInvoiceAmount) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.COD.Amount) },
	},
	{
		name:      domain.FieldTTDocumentID,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.TTDocumentID) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.COD.InvoiceNumber) },
	},
	{
		name:      domain.FieldTTCollectionType,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.TTCollectionType) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.COD.PaymentMethod) },
	},
	{
		name:      domain.FieldTTDocumentSaveType,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.TTDocumentSaveType) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.COD.DocumentSaveType) },
	},
	{
		name:      domain.FieldDCSelectedCredit,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.DCSelectedCredit) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.COD.Installments) },
	},
	{
		name:      domain.FieldDCCreditRule,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.DCCreditRule) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.COD.Criteria) },
	},
	{
		name:      domain.FieldDescription,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.Description) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.Description) },
	},
	{
		name:      domain.FieldOrgReceiverCustID,
		flat:      func(s *dto.FlatShipment) domain.Field { return fieldOf(s.OrgReceiverCustID) },
		formatted: func(s *dto.FormattedShipment) domain.Field { return fieldOf(s.ToAddress.CustomerID) },
	},
	{
		name: domain.FieldCustProdID,
		flat: func(s *dto.FlatShipment) domain.Field { return fieldOf(s.CustProdID) },
	},
	{
		name: domain.FieldOrgGeoCode,
		flat: func(s *dto.FlatShipment) domain.Field { return fieldOf(s.OrgGeoCode) },
	},
	{
		name: domain.FieldPrivilegeOrder,
		flat: func(s *dto.FlatShipment) domain.Field { return fieldOf(s.PrivilegeOrder) },
	},
}

// MapShipment converts one caller-submitted shipment record into the
// carrier's named field set. Every table entry produces either a concrete
// value or the absent marker; a missing source path is never an error.
// Field contents are not validated here; the carrier reports validation
// failures through its own error codes.
func MapShipment(raw json.RawMessage, shape domain.Shape) (*domain.FieldSet, error) {
	fs := domain.NewFieldSet()

	switch shape {
	case domain.ShapeFlat:
		var s dto.FlatShipment
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("map shipment: decode flat record: %w", err)
		}
		for _, spec := range createShipmentFields {
			if spec.flat == nil {
				fs.Put(spec.name, domain.Absent)
				continue
			}
			fs.Put(spec.name, spec.flat(&s))
		}

	case domain.ShapeFormatted:
		var s dto.FormattedShipment
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("map shipment: decode formatted record: %w", err)
		}
		for _, spec := range createShipmentFields {
			if spec.formatted == nil {
				fs.Put(spec.name, domain.Absent)
				continue
			}
			fs.Put(spec.name, spec.formatted(&s))
		}

	default:
		return nil, fmt.Errorf("map shipment: unknown shape %d", shape)
	}

	return fs, nil
}
