package services

import "testing"

func TestEncodeSpecialFields(t *testing.T) {
	got := EncodeSpecialFields(map[string]string{
		"order_number": "42",
		"product":      "X",
	})

	if !got.Present {
		t.Fatal("expected a present field, got absent")
	}
	if got.Value != "3$42#13$X#" {
		t.Fatalf("encoded = %q, want %q", got.Value, "3$42#13$X#")
	}
}

func TestEncodeSpecialFieldsTableOrder(t *testing.T) {
	// seller carries code 1 but is declared after order_number (code 3),
	// so it must pack second.
	got := EncodeSpecialFields(map[string]string{
		"seller":       "acme",
		"order_number": "42",
	})

	if got.Value != "3$42#1$acme#" {
		t.Fatalf("encoded = %q, want %q", got.Value, "3$42#1$acme#")
	}
}

func TestEncodeSpecialFieldsNoMatches(t *testing.T) {
	for name, values := range map[string]map[string]string{
		"nil map":          nil,
		"empty map":        {},
		"unknown keys only": {"favorite_color": "blue"},
	} {
		if got := EncodeSpecialFields(values); got.Present {
			t.Errorf("%s: expected absent, got %q", name, got.Value)
		}
	}
}
