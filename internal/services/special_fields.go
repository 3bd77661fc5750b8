package services

import (
	"fmt"
	"strings"

	"github.com/oboratav/yk-proxy/internal/domain"
)

type specialField struct {
	key  string
	code int
}

// specialFields is the fixed table of caller metadata names and their
// carrier-assigned numeric codes. Declaration order is the packing order
// and deliberately does not follow the codes.
var specialFields = []specialField{
	{"order_number", 3},
	{"order_date", 4},
	{"customer_number", 5},
	{"customer_name", 6},
	{"department", 7},
	{"reference_1", 8},
	{"reference_2", 9},
	{"product", 13},
	{"product_code", 14},
	{"quantity", 15},
	{"batch_number", 16},
	{"shelf_code", 17},
	{"seller", 1},
	{"buyer", 2},
	{"campaign", 10},
	{"promotion", 11},
	{"channel", 12},
	{"note_1", 18},
	{"note_2", 19},
}

// EncodeSpecialFields packs caller metadata into the carrier's single
// free-form field as "{code}${value}#" runs, one per table entry present
// in the source. Unknown keys are ignored. When nothing matches, the
// result is the absent marker rather than an empty string, so the field
// is omitted from the carrier call entirely.
func EncodeSpecialFields(values map[string]string) domain.Field {
	if len(values) == 0 {
		return domain.Absent
	}

	var b strings.Builder
	for _, f := range specialFields {
		v, ok := values[f.key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%d$%s#", f.code, v)
	}

	if b.Len() == 0 {
		return domain.Absent
	}
	return domain.Val(b.String())
}
