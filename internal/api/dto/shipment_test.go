package dto

import (
	"encoding/json"
	"testing"
)

func TestValueUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"string", `"A1"`, "A1", true},
		{"empty string", `""`, "", true},
		{"integer", `3`, "3", true},
		{"float", `2.5`, "2.5", true},
		{"bool", `true`, "true", true},
		{"null", `null`, "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(c.in), &v); err != nil {
				t.Fatalf("unmarshal %s: %v", c.in, err)
			}
			if v.Ok() != c.ok || v.String() != c.want {
				t.Fatalf("value = (%q, %v), want (%q, %v)", v.String(), v.Ok(), c.want, c.ok)
			}
		})
	}
}

func TestValueRejectsCompositeValues(t *testing.T) {
	for _, in := range []string{`{}`, `[]`} {
		var v Value
		if err := json.Unmarshal([]byte(in), &v); err == nil {
			t.Errorf("unmarshal %s: expected an error", in)
		}
	}
}

func TestValueOmittedFieldReadsNotOk(t *testing.T) {
	var s FlatShipment
	if err := json.Unmarshal([]byte(`{"cargoKey":"A1"}`), &s); err != nil {
		t.Fatal(err)
	}

	if !s.CargoKey.Ok() || s.CargoKey.String() != "A1" {
		t.Fatalf("cargoKey = (%q, %v)", s.CargoKey.String(), s.CargoKey.Ok())
	}
	if s.EmailAddress.Ok() {
		t.Fatal("omitted field should read not-ok")
	}
}

func TestValueMarshalRoundtrip(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`"A1"`), &v); err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"A1"` {
		t.Fatalf("marshal = %s", out)
	}

	if out, err = json.Marshal(Value{}); err != nil || string(out) != "null" {
		t.Fatalf("missing value marshal = %s, %v", out, err)
	}
}
