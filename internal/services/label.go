package services

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oboratav/yk-proxy/internal/domain"
)

// zplTemplate is the fixed printer-control layout for one shipment label.
// ^CI28 selects UTF-8 so Turkish characters survive the printer.
const zplTemplate = `^XA
^CI28
^CF0,30
^FO40,40^FD%s %s^FS
^FO40,100^FDGonderici: %s^FS
^FO40,140^FDTel: %s^FS
^FO40,200^FDAlici: %s^FS
^FO40,240^FD%s^FS
^FO40,280^FD%s / %s^FS
^FO40,320^FDTel: %s^FS
^FO40,380^FDAciklama: %s^FS
^FO40,440^FDTalep No: %s^FS
^FO40,480^FDReferans: %s^FS
^FO40,520^FDIrsaliye No: %s^FS
^FO40,580^BY3
^BCN,120,Y,N,N
^FD%s^FS
^XZ
`

// LabelGenerator renders printer-control label documents for successfully
// created shipments. Sender identity is process-wide configuration; Now
// is replaceable for tests and defaults to time.Now.
type LabelGenerator struct {
	SenderName  string
	SenderPhone string
	Now         func() time.Time
}

// Render produces the label document for one reconciled shipment item.
// The item is the merged per-item map built by reconciliation, with
// absent markers already stripped to empty strings. A required field that
// is missing or not a string is an error; by construction this only
// happens when Render is invoked on something other than a reconciled
// successful shipment.
func (g *LabelGenerator) Render(item map[string]any, jobID string) (string, error) {
	caser := cases.Upper(language.Turkish)

	name, err := stringField(item, domain.FieldReceiverCustName)
	if err != nil {
		return "", err
	}
	address, err := stringField(item, domain.FieldReceiverAddress)
	if err != nil {
		return "", err
	}
	town, err := stringField(item, domain.FieldTownName)
	if err != nil {
		return "", err
	}
	city, err := stringField(item, domain.FieldCityName)
	if err != nil {
		return "", err
	}
	description, err := stringField(item, domain.FieldDescription)
	if err != nil {
		return "", err
	}
	phone, err := stringField(item, domain.FieldReceiverPhone1)
	if err != nil {
		return "", err
	}
	waybill, err := stringField(item, domain.FieldWaybillNo)
	if err != nil {
		return "", err
	}
	cargoKey, err := stringField(item, domain.FieldCargoKey)
	if err != nil {
		return "", err
	}

	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}

	return fmt.Sprintf(zplTemplate,
		now.Format("02.01.2006"),
		now.Format("15:04"),
		g.SenderName,
		g.SenderPhone,
		caser.String(name),
		caser.String(address),
		caser.String(town),
		caser.String(city),
		FormatPhoneNumber(phone),
		caser.String(description),
		jobID,
		"", // reference: unimplemented, always empty
		waybill,
		caser.String(cargoKey),
	), nil
}

func stringField(item map[string]any, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("render label: field %s is missing", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("render label: field %s is not a string", key)
	}
	return s, nil
}

// FormatPhoneNumber renders a ten-digit subscriber number in the usual
// 3-3-2-2 presentation grouping. Anything that does not reduce to ten
// digits passes through untouched.
func FormatPhoneNumber(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	if len(digits) != 10 {
		return raw
	}

	return digits[0:3] + " " + digits[3:6] + " " + digits[6:8] + " " + digits[8:10]
}
