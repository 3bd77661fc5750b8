package services

import (
	"github.com/oboratav/yk-proxy/internal/api/dto"
	"github.com/oboratav/yk-proxy/internal/domain"
)

// UnpackPhones maps the formatted-shape phone list onto the carrier's
// three numbered slots. Only the first number is ever used; multi-number
// support is not implemented, so additional entries are ignored and
// slots 2-3 stay absent. No number formatting happens here.
func UnpackPhones(numbers []string) [3]domain.Field {
	slots := [3]domain.Field{domain.Absent, domain.Absent, domain.Absent}
	if len(numbers) > 0 {
		slots[0] = domain.Val(numbers[0])
	}
	return slots
}

// UnpackFlatPhones passes the three already-named flat-shape phone fields
// through, marking any missing one absent.
func UnpackFlatPhones(p1, p2, p3 dto.Value) [3]domain.Field {
	return [3]domain.Field{fieldOf(p1), fieldOf(p2), fieldOf(p3)}
}
