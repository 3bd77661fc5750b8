package services

import (
	"reflect"
	"testing"

	"github.com/oboratav/yk-proxy/internal/ports"
)

func TestMergeQueryResultsBoth(t *testing.T) {
	byShipment := &ports.QueryResult{
		OutFlag: "0",
		Count:   1,
		Details: []map[string]string{{"cargoKey": "A1"}},
	}
	byInvoice := &ports.QueryResult{
		OutFlag: "0",
		Count:   2,
		Details: []map[string]string{{"cargoKey": "B2"}, {"cargoKey": "C3"}},
	}

	merged := MergeQueryResults(byShipment, byInvoice)

	if merged.Count != 3 {
		t.Fatalf("count = %d, want 3", merged.Count)
	}

	wantKeys := []string{"A1", "B2", "C3"}
	if len(merged.Details) != len(wantKeys) {
		t.Fatalf("details = %d entries, want %d", len(merged.Details), len(wantKeys))
	}
	for i, key := range wantKeys {
		if merged.Details[i]["cargoKey"] != key {
			t.Errorf("details[%d] = %v, want cargoKey %s", i, merged.Details[i], key)
		}
	}
}

func TestMergeQueryResultsSingleSide(t *testing.T) {
	res := &ports.QueryResult{
		OutFlag: "0",
		Count:   1,
		Details: []map[string]string{{"cargoKey": "A1"}},
	}

	if got := MergeQueryResults(res, nil); !reflect.DeepEqual(got, *res) {
		t.Fatalf("shipment-only merge = %+v, want %+v", got, *res)
	}
	if got := MergeQueryResults(nil, res); !reflect.DeepEqual(got, *res) {
		t.Fatalf("invoice-only merge = %+v, want %+v", got, *res)
	}
}

func TestMergeQueryResultsNone(t *testing.T) {
	got := MergeQueryResults(nil, nil)
	if got.Count != 0 || len(got.Details) != 0 {
		t.Fatalf("empty merge = %+v", got)
	}
}
